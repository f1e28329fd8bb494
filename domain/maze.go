// Package dmn holds the records shared by the maze services and their stores.
package dmn

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by stores when no maze has the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord is the stored form of a maze: its rendered layout plus metadata.
type MazeRecord struct {
	ID          uuid.UUID  `json:"id" bson:"_id"`
	Rows        int        `json:"rows" bson:"rows"`
	Cols        int        `json:"cols" bson:"cols"`
	Seed        int64      `json:"seed" bson:"seed"`
	Layout      []string   `json:"layout" bson:"layout"`
	Escaped     bool       `json:"escaped" bson:"escaped"`
	RouteLength int        `json:"route_length" bson:"routeLength"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" bson:"parentId,omitempty"` // Set on copies
	CreatedAt   time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updatedAt"`
}
