package dmn

import (
	"slices"
	"time"
)

// ScopeMazesWrite allows generating, solving and copying mazes.
const ScopeMazesWrite = "mazes:write"

// AccessClaims are the decoded claims of an API access token.
type AccessClaims struct {
	Subject   string
	Issuer    string
	Scopes    []string
	ExpiresAt time.Time
}

// HasScope reports whether the claims grant the scope.
func (c *AccessClaims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
