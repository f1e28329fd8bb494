package main

import (
	"bytes"
	"strings"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("prints a reproducible maze", func(t *testing.T) {
		first, err := run(t, "generate", "--rows", "7", "--cols", "9", "--seed", "3")
		require.NoError(t, err)
		second, err := run(t, "generate", "--rows", "7", "--cols", "9", "--seed", "3")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		lines := strings.Split(strings.TrimSpace(first), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "#########", lines[0])
		assert.Equal(t, "seed: 3", lines[7])
	})

	t.Run("marks the escape route", func(t *testing.T) {
		out, err := run(t, "generate", "--rows", "9", "--cols", "9", "--seed", "4", "--escape", "--symbols", "X_o")
		require.NoError(t, err)
		assert.Contains(t, out, "o")
		assert.Contains(t, out, "XXXXXXXXX")
		assert.Contains(t, out, "route: ")
	})

	t.Run("solve seed does not change the route", func(t *testing.T) {
		a, err := run(t, "generate", "--rows", "15", "--cols", "15", "--seed", "8", "--escape", "--solve-seed", "1")
		require.NoError(t, err)
		b, err := run(t, "generate", "--rows", "15", "--cols", "15", "--seed", "8", "--escape", "--solve-seed", "2")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := run(t, "generate", "--rows", "3")
		assert.Error(t, err)
		_, err = run(t, "generate", "--symbols", "##.")
		assert.Error(t, err)
		_, err = run(t, "generate", "--symbols", "#")
		assert.Error(t, err)
	})
}

func TestTokenCommand(t *testing.T) {
	t.Run("issues a token with the write scope", func(t *testing.T) {
		out, err := run(t, "token", "--secret", "s3cret", "--issuer", "cli", "--subject", "ops")
		require.NoError(t, err)

		claims, err := token.NewJwtService("s3cret", "cli").Decode(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "ops", claims.Subject)
		assert.True(t, claims.HasScope(dmn.ScopeMazesWrite))
	})

	t.Run("requires a secret", func(t *testing.T) {
		_, err := run(t, "token", "--secret", "")
		assert.Error(t, err)
	})
}
