package group

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-process stand-in for the redis store.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	sets    int
	failGet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.failGet {
		return "", false, errors.New("store down")
	}
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	s.entries[key] = value
	return nil
}

func (s *memoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func TestCachedLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("miss populates, hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockGroupRepository(ctrl)
		store := newMemoryStore()
		lookup := NewCachedLookup(repo, store)

		// single authoritative read despite two lookups
		repo.EXPECT().IsMember(ctx, gid, member1).Return(true, nil).Times(1)

		ok, err := lookup.IsMember(ctx, member1, gid)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = lookup.IsMember(ctx, member1, gid)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, store.sets)
	})

	t.Run("negative fact is cached too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockGroupRepository(ctrl)
		store := newMemoryStore()
		lookup := NewCachedLookup(repo, store)

		repo.EXPECT().IsMember(ctx, gid, stranger).Return(false, nil).Times(1)

		for i := 0; i < 3; i++ {
			ok, err := lookup.IsMember(ctx, stranger, gid)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("invalidate forces a re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockGroupRepository(ctrl)
		store := newMemoryStore()
		lookup := NewCachedLookup(repo, store)

		first := repo.EXPECT().IsMember(ctx, gid, member1).Return(true, nil)
		repo.EXPECT().IsMember(ctx, gid, member1).Return(false, nil).After(first)

		ok, _ := lookup.IsMember(ctx, member1, gid)
		assert.True(t, ok)

		lookup.Invalidate(ctx, member1, gid)

		ok, err := lookup.IsMember(ctx, member1, gid)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure degrades to the authoritative read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockGroupRepository(ctrl)
		store := newMemoryStore()
		store.failGet = true
		lookup := NewCachedLookup(repo, store)

		repo.EXPECT().IsMember(ctx, gid, member1).Return(true, nil)

		ok, err := lookup.IsMember(ctx, member1, gid)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestDirectLookup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockGroupRepository(ctrl)
	lookup := NewDirectLookup(repo)

	// every call goes straight through
	repo.EXPECT().IsMember(ctx, gid, member1).Return(true, nil).Times(2)

	for i := 0; i < 2; i++ {
		ok, err := lookup.IsMember(ctx, member1, gid)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	lookup.Invalidate(ctx, member1, gid) // no-op
}
