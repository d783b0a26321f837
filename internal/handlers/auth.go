package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Bessima/token-shipping/internal/handlers/schemas"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"

	accessTokenCookie = "access_token"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

type AccessGateI interface {
	Login(role models.Role, password string) (models.Session, error)
}

type AuthHandler struct {
	jwtConfig *JWTConfig
	gate      AccessGateI
	onLogout  []func(sessionID string)
}

func NewAuthHandler(jwtConfig *JWTConfig, gate AccessGateI) *AuthHandler {
	return &AuthHandler{
		jwtConfig: jwtConfig,
		gate:      gate,
	}
}

// OnLogout registers fn to be called with the id of every session that logs out.
func (h *AuthHandler) OnLogout(fn func(sessionID string)) {
	h.onLogout = append(h.onLogout, fn)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req schemas.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.gate.Login(models.Role(req.Role), req.Password)
	if err != nil {
		logger.Log.Warn("login rejected", zap.String("role", req.Role))
		writeError(w, err)
		return
	}

	accessToken, err := h.generateToken(session)
	if err != nil {
		logger.Log.Error("error generating token", zap.Error(err))
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(h.jwtConfig.AccessTokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	logger.Log.Info("login successful", zap.String("role", req.Role), zap.String("session", session.ID))
	writeJSON(w, http.StatusOK, schemas.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   time.Now().Add(h.jwtConfig.AccessTokenTTL).Unix(),
		Role:        string(session.Role),
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session.ID != "" {
		for _, fn := range h.onLogout {
			fn(session.ID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, schemas.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) generateToken(session models.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   string(session.Role),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtConfig.SecretKey))
}

// ValidateToken turns a signed token back into the session it was issued for.
func (h *AuthHandler) ValidateToken(tokenString string) (models.Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.jwtConfig.SecretKey), nil
	})
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid {
		return models.Session{}, jwt.ErrSignatureInvalid
	}

	role := models.Role(claims.Role)
	if !role.IsValid() || claims.ID == "" {
		return models.Session{}, errors.New("invalid claims")
	}

	return models.Session{ID: claims.ID, Role: role, Authenticated: true}, nil
}

func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// GetSessionFromContext returns the zero, unauthenticated session when none is set.
func GetSessionFromContext(ctx context.Context) models.Session {
	if session, ok := ctx.Value(SessionContextKey).(models.Session); ok {
		return session
	}
	return models.Session{}
}
