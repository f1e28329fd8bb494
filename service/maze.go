package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 101
	mazeLockKeyFmt      = "maze:%s"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured limit")
	ErrCorruptedLayout   = errors.New("stored maze layout is corrupted")
)

// MazeService generates, solves and copies stored mazes.
type MazeService struct {
	repo         i.MazeRepo
	locker       i.Locker
	logger       i.Logger
	maxDimension int
	now          func() time.Time
	seed         func() int64
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Repo         i.MazeRepo
	Locker       i.Locker
	Logger       i.Logger
	MaxDimension int // Largest rows or columns accepted, capped at maze.MaxDimension
}

// NewMazeService creates a MazeService from the configuration.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Locker == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a repo, a locker and a logger")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}
	maxDimension = min(maxDimension, maze.MaxDimension)

	return &MazeService{
		repo:         c.Repo,
		locker:       c.Locker,
		logger:       c.Logger,
		maxDimension: maxDimension,
		now:          func() time.Time { return time.Now().UTC() },
		seed:         func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Generate creates a new maze and stores it. A nil seed picks one from the clock;
// the seed used is recorded so the maze can be reproduced.
func (s *MazeService) Generate(ctx context.Context, rows, cols int, seed *int64) (*dmn.MazeRecord, error) {
	if max(rows, cols) > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrDimensionTooLarge, rows, cols, s.maxDimension)
	}

	used := s.pickSeed(seed)
	m, err := maze.New(rows, cols, rand.New(rand.NewSource(used)))
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Rows:      m.Rows(),
		Cols:      m.Cols(),
		Seed:      used,
		Layout:    m.Lines(maze.DefaultSymbols),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", record.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Generated %dx%d maze %s with seed %d", rows, cols, record.ID, used))
	return record, nil
}

// ByID returns the stored maze record.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Load returns the stored record together with its rebuilt maze.
func (s *MazeService) Load(ctx context.Context, id uuid.UUID) (*maze.Maze, *dmn.MazeRecord, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	m, err := maze.Parse(record.Layout, maze.DefaultSymbols)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Parsing maze %s: %v", id, err))
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptedLayout, err)
	}
	return m, record, nil
}

// Escape marks the escape route of a stored maze and saves it. Concurrent
// escapes of the same maze are serialized through the locker.
func (s *MazeService) Escape(ctx context.Context, id uuid.UUID, seed *int64) (*dmn.MazeRecord, error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(mazeLockKeyFmt, id))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warning(fmt.Sprintf("Releasing lock of maze %s: %v", id, err))
		}
	}()

	m, record, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.Escape(rand.New(rand.NewSource(s.pickSeed(seed)))); err != nil {
		s.logger.Warning(fmt.Sprintf("Escaping maze %s: %v", id, err))
		return nil, err
	}

	record.Layout = m.Lines(maze.DefaultSymbols)
	record.Escaped = true
	record.RouteLength = len(m.EscapeRoute())
	record.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving escaped maze %s: %v", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Escaped maze %s, route of %d cells", id, record.RouteLength))
	return record, nil
}

// Copy duplicates a stored maze under a new ID.
func (s *MazeService) Copy(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	m, source, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := m.CopyOf()
	now := s.now()
	parent := source.ID
	record := &dmn.MazeRecord{
		ID:          uuid.New(),
		Rows:        dup.Rows(),
		Cols:        dup.Cols(),
		Seed:        source.Seed,
		Layout:      dup.Lines(maze.DefaultSymbols),
		Escaped:     source.Escaped,
		RouteLength: source.RouteLength,
		ParentID:    &parent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving copy of maze %s: %v", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Copied maze %s to %s", id, record.ID))
	return record, nil
}

func (s *MazeService) pickSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return s.seed()
}
