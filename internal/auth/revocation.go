package auth

import (
	"context"
	"strconv"
	"time"

	"titlehub/internal/cache"
)

const revocationKeyPrefix = "token_cutoff:"

// RevocationStoreInterface records per-user token cutoffs. A token issued
// before its subject's cutoff is no longer trusted, which is how a password
// change invalidates outstanding tokens without persisting them.
type RevocationStoreInterface interface {
	RevokeBefore(ctx context.Context, userID uint, cutoff time.Time) error
	IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error)
}

// RevocationStore keeps cutoffs in Redis. Entries expire after TokenExpiry
// since every token issued before the cutoff has expired by then anyway.
type RevocationStore struct {
	cache *cache.Client
}

// Ensure RevocationStore implements RevocationStoreInterface
var _ RevocationStoreInterface = (*RevocationStore)(nil)

// NewRevocationStore creates a new revocation store.
func NewRevocationStore(cache *cache.Client) *RevocationStore {
	return &RevocationStore{cache: cache}
}

// RevokeBefore records that tokens issued to userID before cutoff are invalid.
func (s *RevocationStore) RevokeBefore(ctx context.Context, userID uint, cutoff time.Time) error {
	key := revocationKeyPrefix + strconv.FormatUint(uint64(userID), 10)
	value := strconv.FormatInt(cutoff.Unix(), 10)
	return s.cache.Set(ctx, key, []byte(value), TokenExpiry)
}

// IsRevoked reports whether a token issued at issuedAt for userID falls before
// a recorded cutoff. Missing keys and unreachable Redis read as not revoked,
// matching the fail-safe cache wrapper.
func (s *RevocationStore) IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error) {
	key := revocationKeyPrefix + strconv.FormatUint(uint64(userID), 10)
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false, nil
	}
	cutoff, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return false, nil
	}
	return issuedAt.Unix() < cutoff, nil
}
