package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agenda/config"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-do-backend"))
	require.NoError(t, err)
	return token
}

func TestAuthService_ReadsUserClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":        "user-1",
		"name":       "Ana Souza",
		"avatar_url": "https://cdn.example.com/ana.png",
	})

	svc := NewAuthService(config.SessionConfig{Token: token}, zap.NewNop())

	assert.True(t, svc.SignedIn())
	user := svc.CurrentUser()
	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "https://cdn.example.com/ana.png", user.AvatarURL)
}

func TestAuthService_FallsBackToSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-2"})

	svc := NewAuthService(config.SessionConfig{Token: token}, zap.NewNop())

	assert.Equal(t, "user-2", svc.CurrentUser().Name)
}

func TestAuthService_InvalidToken(t *testing.T) {
	svc := NewAuthService(config.SessionConfig{Token: "não é um jwt"}, zap.NewNop())

	assert.False(t, svc.SignedIn())
	assert.Empty(t, svc.CurrentUser().Name)
}

func TestAuthService_SignOut(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Ana"})
	svc := NewAuthService(config.SessionConfig{Token: token}, zap.NewNop())
	require.True(t, svc.SignedIn())

	svc.SignOut()

	assert.False(t, svc.SignedIn())
	assert.Empty(t, svc.CurrentUser().Name)
}
