package service

import (
	"fmt"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccessGate maps a role and its shared password to a session tier. There is
// no account store behind it.
type AccessGate struct {
	hashes map[models.Role][]byte
}

func NewAccessGate(passwords map[models.Role]string) (*AccessGate, error) {
	gate := &AccessGate{hashes: make(map[models.Role][]byte, len(passwords))}
	for role, password := range passwords {
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", role)
		}
		if password == "" {
			return nil, fmt.Errorf("empty password for role %q", role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error generate password hash for %q: %w", role, err)
		}
		gate.hashes[role] = hash
	}
	return gate, nil
}

func (gate *AccessGate) Login(role models.Role, password string) (models.Session, error) {
	hash, ok := gate.hashes[role]
	if !ok {
		return models.Session{}, customerror.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return models.Session{}, customerror.NewInvalidCredentialsError()
	}
	return models.Session{ID: uuid.NewString(), Role: role, Authenticated: true}, nil
}
