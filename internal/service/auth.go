package service

import (
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"agenda/config"
	"agenda/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// AuthServiceImpl exposes the signed-in user carried by the backend-issued
// session token. The token is decoded, not verified: the signature belongs
// to the backend, the client only reads the display claims.
type AuthServiceImpl struct {
	token  string
	user   domain.User
	logger *zap.Logger
}

func NewAuthService(cfg config.SessionConfig, logger *zap.Logger) *AuthServiceImpl {
	s := &AuthServiceImpl{
		token:  cfg.Token,
		logger: logger,
	}

	if cfg.Token == "" {
		return s
	}

	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cfg.Token, claims); err != nil {
		logger.Warn("token de sessão inválido", zap.Error(err))
		s.token = ""
		return s
	}

	s.user = domain.User{Name: claims.Name, AvatarURL: claims.AvatarURL}
	if s.user.Name == "" {
		s.user.Name = claims.Subject
	}

	return s
}

func (s *AuthServiceImpl) CurrentUser() domain.User {
	return s.user
}

func (s *AuthServiceImpl) SignedIn() bool {
	return s.token != ""
}

func (s *AuthServiceImpl) SignOut() {
	s.token = ""
	s.user = domain.User{}
}
