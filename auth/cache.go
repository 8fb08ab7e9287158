// api/auth/cache.go

package auth

import (
	"sync"
	"time"
)

// Default validity windows. A negative verdict is kept much shorter than a
// positive one so a transient upstream outage that blacklists a legitimate
// token self-heals quickly.
const (
	DefaultPositiveTTL = 5 * time.Minute
	DefaultNegativeTTL = 30 * time.Second
)

type cacheEntry struct {
	valid     bool
	expiresAt time.Time
}

// TokenCache remembers upstream validation verdicts per bearer token.
// Entries are process-local and non-durable; expiry is checked lazily on
// read, there is no background sweep. Tokens are stored as opaque keys and
// never decoded.
type TokenCache struct {
	mu          sync.RWMutex
	entries     map[string]cacheEntry
	positiveTTL time.Duration
	negativeTTL time.Duration
	now         func() time.Time
}

func NewTokenCache(positiveTTL, negativeTTL time.Duration) *TokenCache {
	if positiveTTL <= 0 {
		positiveTTL = DefaultPositiveTTL
	}
	if negativeTTL <= 0 {
		negativeTTL = DefaultNegativeTTL
	}
	return &TokenCache{
		entries:     make(map[string]cacheEntry),
		positiveTTL: positiveTTL,
		negativeTTL: negativeTTL,
		now:         time.Now,
	}
}

// Get returns the cached verdict for token. ok is false when no unexpired
// entry exists; an expired entry behaves exactly like a missing one.
func (c *TokenCache) Get(token string) (valid bool, ok bool) {
	c.mu.RLock()
	entry, found := c.entries[token]
	c.mu.RUnlock()

	if !found || c.now().After(entry.expiresAt) {
		return false, false
	}
	return entry.valid, true
}

// Set stores a verdict using the default window for its polarity.
func (c *TokenCache) Set(token string, valid bool) {
	ttl := c.positiveTTL
	if !valid {
		ttl = c.negativeTTL
	}
	c.SetWithTTL(token, valid, ttl)
}

// SetWithTTL stores a verdict with an explicit freshness window,
// overwriting any existing entry (last write wins).
func (c *TokenCache) SetWithTTL(token string, valid bool, ttl time.Duration) {
	entry := cacheEntry{valid: valid, expiresAt: c.now().Add(ttl)}
	c.mu.Lock()
	c.entries[token] = entry
	c.mu.Unlock()
}
