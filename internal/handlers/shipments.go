package handlers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/Bessima/token-shipping/internal/handlers/schemas"
	"github.com/Bessima/token-shipping/internal/manifest"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShipmentServiceI interface {
	Create(ctx context.Context, request schemas.CreateShipmentRequest) (models.StoredShipment, error)
	Ship(ctx context.Context, position int) (models.StoredShipment, error)
	Cancel(ctx context.Context, position int) (models.StoredShipment, error)
	Get(position int) (models.StoredShipment, error)
	Pending() []models.StoredShipment
	History(role models.Role) []models.HistoryRow
}

type ManifestRendererI interface {
	Render(shipment models.Shipment) (string, error)
}

// actionKey scopes button state to one session and one record. Entries live
// until the session logs out.
type actionKey struct {
	session  string
	position int
}

type actionState struct {
	shipDisabled   bool
	cancelDisabled bool
}

type ShipmentsHandler struct {
	service  ShipmentServiceI
	renderer ManifestRendererI

	mu      sync.Mutex
	actions map[actionKey]actionState
}

func NewShipmentsHandler(service ShipmentServiceI, renderer ManifestRendererI) *ShipmentsHandler {
	return &ShipmentsHandler{
		service:  service,
		renderer: renderer,
		actions:  make(map[actionKey]actionState),
	}
}

// ForgetSession drops the action flags of a session that has ended.
func (h *ShipmentsHandler) ForgetSession(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key := range h.actions {
		if key.session == sessionID {
			delete(h.actions, key)
		}
	}
}

func (h *ShipmentsHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Platforms)
}

// Create stores a new Pending shipment and renders its manifest right away.
// A rendering failure is logged; the shipment itself is already saved.
func (h *ShipmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req schemas.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "can't parse body", http.StatusBadRequest)
		logger.Log.Warn("can't parse shipment body", zap.Error(err))
		return
	}

	stored, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	response := schemas.ShipmentResponse{Position: stored.Position, Shipment: stored.Shipment}
	path, err := h.renderer.Render(stored.Shipment)
	if err != nil {
		logger.Log.Warn("manifest was not rendered", zap.Int("position", stored.Position), zap.Error(err))
	} else {
		response.ManifestPath = path
	}

	writeJSON(w, http.StatusCreated, response)
}

func (h *ShipmentsHandler) Pending(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	h.mu.Lock()
	items := []schemas.WorklistItem{}
	for _, stored := range h.service.Pending() {
		state := h.actions[actionKey{session: session.ID, position: stored.Position}]
		items = append(items, schemas.WorklistItem{
			Position:       stored.Position,
			Shipment:       stored.Shipment,
			ShipDisabled:   state.shipDisabled,
			CancelDisabled: state.cancelDisabled,
		})
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (h *ShipmentsHandler) Ship(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Ship)
}

func (h *ShipmentsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Cancel)
}

func (h *ShipmentsHandler) transition(w http.ResponseWriter, r *http.Request, apply func(context.Context, int) (models.StoredShipment, error)) {
	position, ok := positionParam(w, r)
	if !ok {
		return
	}

	stored, err := apply(r.Context(), position)
	if err != nil {
		writeError(w, err)
		return
	}

	session := GetSessionFromContext(r.Context())
	h.mu.Lock()
	h.actions[actionKey{session: session.ID, position: position}] = actionState{shipDisabled: true, cancelDisabled: true}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, schemas.ShipmentResponse{Position: stored.Position, Shipment: stored.Shipment})
}

// Manifest renders the record to disk and sends that file as an attachment.
func (h *ShipmentsHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	position, ok := positionParam(w, r)
	if !ok {
		return
	}

	stored, err := h.service.Get(position)
	if err != nil {
		writeError(w, err)
		return
	}

	path, err := h.renderer.Render(stored.Shipment)
	if err != nil {
		writeError(w, err)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		writeError(w, err)
		return
	}

	name := manifest.DownloadName(stored.Shipment.CompanyName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeContent(w, r, name, info.ModTime(), file)
}

func (h *ShipmentsHandler) History(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.service.History(session.Role))
}

func positionParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil || position < 0 {
		http.Error(w, "invalid shipment position", http.StatusBadRequest)
		return 0, false
	}
	return position, true
}
