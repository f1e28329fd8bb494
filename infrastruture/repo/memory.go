package repo

import (
	"context"
	"sync"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MemoryMazeRepo keeps mazes in process memory.
type MemoryMazeRepo struct {
	mazes map[uuid.UUID]dmn.MazeRecord
	sync.RWMutex
}

// NewMemoryMazeRepo creates an empty in-memory repository.
func NewMemoryMazeRepo() *MemoryMazeRepo {
	return &MemoryMazeRepo{mazes: make(map[uuid.UUID]dmn.MazeRecord)}
}

// Save stores a copy of the record, replacing any previous one with the same ID.
func (r *MemoryMazeRepo) Save(_ context.Context, maze *dmn.MazeRecord) error {
	r.Lock()
	defer r.Unlock()
	r.mazes[maze.ID] = cloneRecord(maze)
	return nil
}

// ByID returns a copy of the stored record.
func (r *MemoryMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.RLock()
	defer r.RUnlock()
	record, ok := r.mazes[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	clone := cloneRecord(&record)
	return &clone, nil
}

func cloneRecord(m *dmn.MazeRecord) dmn.MazeRecord {
	clone := *m
	clone.Layout = append([]string(nil), m.Layout...)
	if m.ParentID != nil {
		parent := *m.ParentID
		clone.ParentID = &parent
	}
	return clone
}
