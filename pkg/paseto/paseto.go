package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
)

const tokenLifetime = 24 * time.Hour

// Maker issues and validates PASETO v2 local tokens. Construct one at startup
// and inject it; the key is never read from package state.
type Maker struct {
	v2  *paseto.V2
	key []byte
}

func NewMaker(secretBase64 string) (*Maker, error) {
	key, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PASETO secret: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO v2 local requires a 32-byte key, got %d bytes", len(key))
	}
	return &Maker{v2: paseto.NewV2(), key: key}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(tokenLifetime),
		NotBefore:  now,
	}
	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.v2.Encrypt(m.key, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.v2.Decrypt(tokenString, m.key, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Get("user_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	return &models.Claims{
		UserID: userID,
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}, nil
}
