package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const mazeKeyFmt = "%s:maze:%s"

// RedisMazeRepo stores mazes as JSON strings in Redis with a TTL.
type RedisMazeRepo struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisMazeRepo creates a RedisMazeRepo. A non-positive ttlSeconds keeps mazes forever.
func NewRedisMazeRepo(client *redis.Client, prefix string, ttlSeconds int) *RedisMazeRepo {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &RedisMazeRepo{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisMazeRepo) key(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, r.prefix, id)
}

// Save writes the record, refreshing its TTL.
func (r *RedisMazeRepo) Save(ctx context.Context, maze *dmn.MazeRecord) error {
	payload, err := json.Marshal(maze)
	if err != nil {
		return fmt.Errorf("encoding maze %s: %w", maze.ID, err)
	}
	if err := r.client.Set(ctx, r.key(maze.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("saving maze %s: %w", maze.ID, err)
	}
	return nil
}

// ByID reads a record back.
func (r *RedisMazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}

	var maze dmn.MazeRecord
	if err := json.Unmarshal(payload, &maze); err != nil {
		return nil, fmt.Errorf("decoding maze %s: %w", id, err)
	}
	return &maze, nil
}
