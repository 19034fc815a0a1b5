package token

import (
	"time"

	"github.com/fewfast/HomieRanking-BackEnd/pkg/cache"
)

// MemoryRevocationList keeps revoked token IDs in an in-process TTL cache.
// Entries disappear once the token they belong to would have expired anyway.
type MemoryRevocationList struct {
	cache *cache.Memory
}

var _ RevocationList = (*MemoryRevocationList)(nil)

func NewMemoryRevocationList(maxSize int) *MemoryRevocationList {
	return &MemoryRevocationList{
		cache: cache.NewMemory(maxSize),
	}
}

func (l *MemoryRevocationList) Revoke(jti string, ttl time.Duration) {
	l.cache.Set(jti, ttl)
}

func (l *MemoryRevocationList) Revoked(jti string) bool {
	return l.cache.Has(jti)
}
