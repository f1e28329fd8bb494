package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	// If the maze already exists, it replaces the record. Otherwise, it creates a new one.
	Save(ctx context.Context, maze *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns dmn.ErrMazeNotFound if no maze has the ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
