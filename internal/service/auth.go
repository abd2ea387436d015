package service

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/clerk/clerk-sdk-go/v2"
)

// AuthService configures the Clerk SDK. It is only built when a secret key
// is configured.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
