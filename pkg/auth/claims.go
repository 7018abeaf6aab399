package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Email string
	JTI   string
}

// AccessTokenClaims represents the typed JWT issued to clients. The token only
// identifies the user; every valid token is authorized for the protected routes.
type AccessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
