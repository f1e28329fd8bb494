package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeService generates, solves and copies stored mazes.
type MazeService interface {
	Generate(ctx context.Context, rows, cols int, seed *int64) (*dmn.MazeRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	Load(ctx context.Context, id uuid.UUID) (*maze.Maze, *dmn.MazeRecord, error)
	Escape(ctx context.Context, id uuid.UUID, seed *int64) (*dmn.MazeRecord, error)
	Copy(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
