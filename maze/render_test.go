package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	layout := []string{
		"#####",
		"..  #",
		"#.# #",
		"#....",
		"#####",
	}

	t.Run("parsed layout renders back unchanged", func(t *testing.T) {
		m := mustParse(t, layout...)
		assert.Equal(t, strings.Join(layout, "\n")+"\n", m.String())
		assert.True(t, m.Cell(1, 2).Passable())
		assert.False(t, m.Cell(1, 2).Escape())
		assert.True(t, m.Cell(3, 4).Escape())
	})

	t.Run("custom symbols", func(t *testing.T) {
		m := mustParse(t, layout...)
		s := Symbols{Wall: '█', Path: '·', Escape: 'o'}
		lines := m.Lines(s)
		assert.Equal(t, "oo··█", lines[1])

		reparsed, err := Parse(lines, s)
		require.NoError(t, err)
		assert.Equal(t, m.String(), reparsed.String())
	})

	t.Run("generated maze renders one line per row", func(t *testing.T) {
		m, err := New(7, 9, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		lines := m.Lines(DefaultSymbols)
		require.Len(t, lines, 7)
		for _, line := range lines {
			assert.Len(t, line, 9)
		}
		assert.Equal(t, "#########", lines[0])
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		symbols Symbols
		wantErr error
	}{
		{"empty", nil, DefaultSymbols, ErrMalformedLayout},
		{"ragged rows", []string{"#####", "####", "#####", "#####", "#####"}, DefaultSymbols, ErrMalformedLayout},
		{"unknown symbol", []string{"#####", "##x##", "#####", "#####", "#####"}, DefaultSymbols, ErrMalformedLayout},
		{"ambiguous symbols", []string{"#####"}, Symbols{Wall: '#', Path: '#', Escape: '.'}, ErrMalformedLayout},
		{"too small", []string{"###", "###", "###"}, DefaultSymbols, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.lines, tt.symbols)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
