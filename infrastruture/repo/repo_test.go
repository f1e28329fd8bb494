package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *dmn.MazeRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return &dmn.MazeRecord{
		ID:          uuid.New(),
		Rows:        5,
		Cols:        5,
		Seed:        42,
		Layout:      []string{"#####", ".....", "#####", "#####", "#####"},
		Escaped:     true,
		RouteLength: 5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// exerciseRepo runs the behaviour every MazeRepo must share.
func exerciseRepo(t *testing.T, r i.MazeRepo) {
	ctx := context.Background()

	t.Run("unknown maze", func(t *testing.T) {
		_, err := r.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		record := sampleRecord()
		require.NoError(t, r.Save(ctx, record))

		got, err := r.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Layout, got.Layout)
		assert.Equal(t, record.Seed, got.Seed)
		assert.True(t, got.Escaped)
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("save replaces", func(t *testing.T) {
		record := sampleRecord()
		require.NoError(t, r.Save(ctx, record))

		record.Escaped = false
		parent := uuid.New()
		record.ParentID = &parent
		require.NoError(t, r.Save(ctx, record))

		got, err := r.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.False(t, got.Escaped)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, parent, *got.ParentID)
	})
}

func TestMemoryMazeRepo(t *testing.T) {
	exerciseRepo(t, NewMemoryMazeRepo())

	t.Run("returned records do not alias the store", func(t *testing.T) {
		r := NewMemoryMazeRepo()
		record := sampleRecord()
		require.NoError(t, r.Save(context.Background(), record))
		record.Layout[1] = "#####"

		got, err := r.ByID(context.Background(), record.ID)
		require.NoError(t, err)
		got.Layout[0] = "....."

		again, err := r.ByID(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, sampleRecord().Layout, again.Layout)
	})
}

func TestRedisMazeRepo(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisMazeRepo(client, "test", 60)

	exerciseRepo(t, r)

	t.Run("keys carry the prefix and the TTL", func(t *testing.T) {
		record := sampleRecord()
		require.NoError(t, r.Save(context.Background(), record))

		key := "test:maze:" + record.ID.String()
		assert.True(t, mr.Exists(key))
		assert.Equal(t, 60*time.Second, mr.TTL(key))

		mr.FastForward(61 * time.Second)
		_, err := r.ByID(context.Background(), record.ID)
		assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, mr.Set("test:maze:"+id.String(), "{not json"))
		_, err := r.ByID(context.Background(), id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, dmn.ErrMazeNotFound)
	})
}
