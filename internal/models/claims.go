package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims carried by an identity-provider access
// token. Subject is the provider's stable user identifier and anchors
// user provisioning.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
