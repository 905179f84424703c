package group

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gochat/internal/cache"
)

const membershipTTL = 5 * time.Minute

// MembershipLookup answers the boolean "is this user a member of this group".
// Only the boolean fact is ever cached, never the role; admin checks must go
// to the authoritative store.
//
// The cached and direct implementations are interchangeable: the authorization
// gate must behave identically with the cache entirely disabled.
type MembershipLookup interface {
	IsMember(ctx context.Context, userID, groupID string) (bool, error)

	// Invalidate drops the cached fact after a membership mutation. It is
	// best effort: failures are logged, never returned, since the cache is
	// not the source of truth.
	Invalidate(ctx context.Context, userID, groupID string)
}

type directLookup struct {
	repo GroupRepository
}

// NewDirectLookup answers membership straight from the store, with no caching.
func NewDirectLookup(repo GroupRepository) MembershipLookup {
	return &directLookup{repo: repo}
}

func (l *directLookup) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	return l.repo.IsMember(ctx, groupID, userID)
}

func (l *directLookup) Invalidate(ctx context.Context, userID, groupID string) {}

type cachedLookup struct {
	repo  GroupRepository
	store cache.Store
}

// NewCachedLookup reads through a TTL cache before hitting the store.
func NewCachedLookup(repo GroupRepository, store cache.Store) MembershipLookup {
	return &cachedLookup{repo: repo, store: store}
}

func membershipKey(userID, groupID string) string {
	return fmt.Sprintf("membership:%s:%s", userID, groupID)
}

func (l *cachedLookup) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	key := membershipKey(userID, groupID)

	val, found, err := l.store.Get(ctx, key)
	if err != nil {
		// degraded cache must not fail authorization, fall through to the store
		log.Error().Err(err).Str("key", key).Msg("membership cache read failed")
	} else if found {
		return val == "1", nil
	}

	isMember, err := l.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return false, err
	}

	cached := "0"
	if isMember {
		cached = "1"
	}
	if err := l.store.Set(ctx, key, cached, membershipTTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("membership cache write failed")
	}

	return isMember, nil
}

func (l *cachedLookup) Invalidate(ctx context.Context, userID, groupID string) {
	key := membershipKey(userID, groupID)
	if err := l.store.Del(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("membership cache invalidation failed")
	}
}
