package usecase

import (
	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs from
// the JWT layer.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwt: jwtService}
}

func (t *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
