package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) *Maze {
	t.Helper()
	m, err := Parse(lines, DefaultSymbols)
	require.NoError(t, err)
	return m
}

// assertEscapeRoute checks that the escape cells form a simple path of
// corridors from the entrance to the exit.
func assertEscapeRoute(t *testing.T, m *Maze) {
	t.Helper()

	entrance, err := m.Entrance()
	require.NoError(t, err)
	exit, err := m.Exit()
	require.NoError(t, err)

	marked := 0
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			c := m.Cell(row, col)
			if !c.Escape() {
				continue
			}
			marked++
			require.True(t, c.Passable(), "escape cell %d,%d must be passable", row, col)

			degree := 0
			for _, d := range Directions {
				if n := m.Cell(row+d.Row, col+d.Col); n != nil && n.Escape() {
					degree++
				}
			}
			pos := CellPosition{Row: row, Col: col}
			if pos == entrance || pos == exit {
				assert.Equal(t, 1, degree, "route end %v", pos)
			} else {
				assert.Equal(t, 2, degree, "route cell %v", pos)
			}
		}
	}

	route := m.EscapeRoute()
	require.NotEmpty(t, route)
	assert.Equal(t, entrance, route[0])
	assert.Equal(t, exit, route[len(route)-1])
	assert.Len(t, route, marked, "route has no repeated or detached cells")
}

func TestEscape(t *testing.T) {
	t.Run("straight corridor is marked entirely", func(t *testing.T) {
		m := mustParse(t,
			"#####",
			"     ",
			"#####",
			"#####",
			"#####",
		)
		require.NoError(t, m.Escape(rand.New(rand.NewSource(1))))

		assert.Equal(t, []string{
			"#####",
			".....",
			"#####",
			"#####",
			"#####",
		}, m.Lines(DefaultSymbols))
		assertEscapeRoute(t, m)
	})

	t.Run("dead end branch is left unmarked", func(t *testing.T) {
		want := []string{
			"#######",
			"....  #",
			"###.###",
			"###....",
			"#######",
		}
		for seed := int64(0); seed < 30; seed++ {
			m := mustParse(t,
				"#######",
				"      #",
				"### ###",
				"###    ",
				"#######",
			)
			require.NoError(t, m.Escape(rand.New(rand.NewSource(seed))))
			assert.Equal(t, want, m.Lines(DefaultSymbols), "seed %d", seed)
			assertEscapeRoute(t, m)
		}
	})

	t.Run("crossroad next to the exit jumps straight out", func(t *testing.T) {
		m := mustParse(t,
			"#####",
			"     ",
			"### #",
			"### #",
			"#####",
		)
		require.NoError(t, m.Escape(rand.New(rand.NewSource(3))))
		assert.Equal(t, []string{
			"#####",
			".....",
			"### #",
			"### #",
			"#####",
		}, m.Lines(DefaultSymbols))
	})

	t.Run("generated mazes get a simple route", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			m, err := New(15, 21, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			require.NoError(t, m.Escape(rand.New(rand.NewSource(seed+100))))
			assertEscapeRoute(t, m)
			assertPerfect(t, m)
		}
	})

	t.Run("route does not depend on the solving seed", func(t *testing.T) {
		generated, err := New(25, 31, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		var want []string
		for seed := int64(0); seed < 10; seed++ {
			m := generated.CopyOf()
			require.NoError(t, m.Escape(rand.New(rand.NewSource(seed))))
			got := m.Lines(DefaultSymbols)
			if want == nil {
				want = got
				continue
			}
			assert.Equal(t, want, got, "seed %d", seed)
		}
	})

	t.Run("running escape twice gives the same route", func(t *testing.T) {
		m, err := New(13, 13, rand.New(rand.NewSource(11)))
		require.NoError(t, err)
		require.NoError(t, m.Escape(rand.New(rand.NewSource(1))))
		first := m.String()
		require.NoError(t, m.Escape(rand.New(rand.NewSource(2))))
		assert.Equal(t, first, m.String())
	})

	t.Run("escape leaves walls and corridors untouched", func(t *testing.T) {
		m, err := New(9, 17, rand.New(rand.NewSource(4)))
		require.NoError(t, err)
		walls := m.Render(Symbols{Wall: '#', Path: ' ', Escape: ' '})
		require.NoError(t, m.Escape(nil))
		assert.Equal(t, walls, m.Render(Symbols{Wall: '#', Path: ' ', Escape: ' '}))
	})
}

func TestEscapeIntegrity(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{
			name: "no exit",
			layout: []string{
				"#####",
				"    #",
				"#####",
				"#####",
				"#####",
			},
		},
		{
			name: "no entrance",
			layout: []string{
				"#####",
				"#    ",
				"#####",
				"#####",
				"#####",
			},
		},
		{
			name: "two entrances",
			layout: []string{
				"#####",
				"     ",
				"  ###",
				"#####",
				"#####",
			},
		},
		{
			name: "two exits",
			layout: []string{
				"#####",
				"     ",
				"#### ",
				"#####",
				"#####",
			},
		},
		{
			name: "corridors with a loop",
			layout: []string{
				"#####",
				"   ##",
				"#    ",
				"#####",
				"#####",
			},
		},
		{
			name: "detached corridor",
			layout: []string{
				"#####",
				"     ",
				"#####",
				"## ##",
				"#####",
			},
		},
		{
			name: "exit not connected to entrance",
			layout: []string{
				"#####",
				"  ###",
				"#####",
				"###  ",
				"#####",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, tt.layout...)
			err := m.Escape(rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrMazeIntegrity)
			assert.Empty(t, m.EscapeRoute())
		})
	}
}
