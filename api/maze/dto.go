// Package mazeapi provides the request and response bodies of the maze routes.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// GenerateRequest asks for a new maze.
type GenerateRequest struct {
	Rows int    `json:"rows" binding:"required"`
	Cols int    `json:"cols" binding:"required"`
	Seed *int64 `json:"seed"`
}

// EscapeRequest optionally fixes the seed used while exploring crossroads.
type EscapeRequest struct {
	Seed *int64 `json:"seed"`
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID          string    `json:"id"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	Seed        int64     `json:"seed"`
	Layout      []string  `json:"layout"`
	Escaped     bool      `json:"escaped"`
	RouteLength int       `json:"route_length"`
	ParentID    string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	resp := &MazeResponse{
		ID:          r.ID.String(),
		Rows:        r.Rows,
		Cols:        r.Cols,
		Seed:        r.Seed,
		Layout:      r.Layout,
		Escaped:     r.Escaped,
		RouteLength: r.RouteLength,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ParentID != nil {
		resp.ParentID = r.ParentID.String()
	}
	return resp
}
