package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Tokenizer defines methods for generating and decoding access tokens.
type Tokenizer interface {
	// Generate creates a token for the subject carrying the given scopes.
	Generate(subject string, scopes []string, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (*dmn.AccessClaims, error)
}
