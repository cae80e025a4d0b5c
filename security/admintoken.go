package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AdminIdentity struct {
	Username     string
	Organization string
}

type Identity struct {
	UniqueName   string `json:"unique_name"`
	Organization string `json:"org"`
	Role         string `json:"role"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateAdminToken signs a short-lived HS256 session token for the admin
// panel. The secret is base64 encoded in configuration.
func CreateAdminToken(identity *AdminIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			UniqueName:   identity.Username,
			Organization: identity.Organization,
			Role:         "admin",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wms",
			Audience:  []string{"wms-admin"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretBytes)
}
