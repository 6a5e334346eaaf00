package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationExpired(t *testing.T) {
	expiresAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rec := Recommendation{ExpiresAt: expiresAt}

	assert.False(t, rec.Expired(expiresAt.Add(-time.Second)))
	// The expiry instant itself is already expired.
	assert.True(t, rec.Expired(expiresAt))
	assert.True(t, rec.Expired(expiresAt.Add(time.Second)))
}
