package paseto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
)

func testSecret() string {
	return base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestNewMakerRejectsBadKeys(t *testing.T) {
	_, err := NewMaker("not-base64!!!")
	assert.Error(t, err)

	short := base64.URLEncoding.EncodeToString([]byte("tooshort"))
	_, err = NewMaker(short)
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	maker, err := NewMaker(testSecret())
	require.NoError(t, err)

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "alice@office.dev",
		Role:  "admin",
	}

	token, err := maker.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	maker, err := NewMaker(testSecret())
	require.NoError(t, err)

	other, err := NewMaker(base64.URLEncoding.EncodeToString([]byte("fedcba9876543210fedcba9876543210")))
	require.NoError(t, err)

	token, err := maker.GenerateToken(&models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = maker.ValidateToken("v2.local.garbage")
	assert.Error(t, err)
}
