package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCache(positiveTTL, negativeTTL time.Duration) (*TokenCache, *time.Time) {
	cache := NewTokenCache(positiveTTL, negativeTTL)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func TestTokenCache_MissOnUnknownToken(t *testing.T) {
	cache, _ := newTestCache(5*time.Minute, 30*time.Second)

	_, ok := cache.Get("never-seen")
	assert.False(t, ok)
}

func TestTokenCache_PositiveEntryWithinWindow(t *testing.T) {
	cache, now := newTestCache(5*time.Minute, 30*time.Second)

	cache.Set("tok", true)

	*now = now.Add(4 * time.Minute)
	valid, ok := cache.Get("tok")
	assert.True(t, ok)
	assert.True(t, valid)
}

func TestTokenCache_NegativeEntryExpiresSooner(t *testing.T) {
	cache, now := newTestCache(5*time.Minute, 30*time.Second)

	cache.Set("good", true)
	cache.Set("bad", false)

	// Inside the negative window both verdicts are served.
	*now = now.Add(29 * time.Second)
	valid, ok := cache.Get("bad")
	assert.True(t, ok)
	assert.False(t, valid)

	// Past the negative window the bad token misses while the good one is
	// still cached.
	*now = now.Add(2 * time.Second)
	_, ok = cache.Get("bad")
	assert.False(t, ok)

	valid, ok = cache.Get("good")
	assert.True(t, ok)
	assert.True(t, valid)
}

func TestTokenCache_ExpiredEntryBehavesAsAbsent(t *testing.T) {
	cache, now := newTestCache(5*time.Minute, 30*time.Second)

	cache.Set("tok", true)
	*now = now.Add(5*time.Minute + time.Second)

	_, ok := cache.Get("tok")
	assert.False(t, ok)
}

func TestTokenCache_OverwriteRefreshesEntry(t *testing.T) {
	cache, now := newTestCache(5*time.Minute, 30*time.Second)

	cache.Set("tok", false)
	cache.Set("tok", true)

	*now = now.Add(time.Minute)
	valid, ok := cache.Get("tok")
	assert.True(t, ok)
	assert.True(t, valid)
}

func TestTokenCache_SetWithTTLOverridesDefaults(t *testing.T) {
	cache, now := newTestCache(5*time.Minute, 30*time.Second)

	cache.SetWithTTL("tok", true, 10*time.Second)

	*now = now.Add(11 * time.Second)
	_, ok := cache.Get("tok")
	assert.False(t, ok)
}

func TestTokenCache_ZeroTTLsFallBackToDefaults(t *testing.T) {
	cache := NewTokenCache(0, 0)
	assert.Equal(t, DefaultPositiveTTL, cache.positiveTTL)
	assert.Equal(t, DefaultNegativeTTL, cache.negativeTTL)
	assert.Less(t, cache.negativeTTL, cache.positiveTTL)
}
