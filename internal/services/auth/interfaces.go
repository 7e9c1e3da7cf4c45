// filepath: internal/services/auth/interfaces.go
package auth

import "daylog/internal/models"

// TokenService defines the contract for JWT operations. Tokens are
// stateless: expiry is the only lifetime bound, and the role claim is
// frozen at issue time. A revocation-aware implementation can be swapped
// in behind this interface without touching call sites.
type TokenService interface {
	Issue(user *models.User) (string, error)
	Verify(tokenString string) (*Identity, error)
}
