package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/suk-6/pickr-server/domain"
	"github.com/suk-6/pickr-server/internal/infrastructure/auth"
	"github.com/suk-6/pickr-server/internal/infrastructure/cache"
)

const testSecret = "test-secret"

// newTestStore creates a volatile store backed by an in-process redis. The
// returned miniredis handle lets tests fast-forward TTLs without sleeping.
func newTestStore(t *testing.T) (domain.VolatileStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewRedisStore(client), mr
}

// newTestSigner creates a real HS256 signer with a fixed test secret
func newTestSigner(t *testing.T) domain.TokenSigner {
	t.Helper()
	return auth.NewJWTSigner(testSecret, "pickr-test")
}

// newTestTokenService creates a token service on an in-process store
func newTestTokenService(t *testing.T, accessTTL, refreshTTL time.Duration) domain.TokenService {
	t.Helper()

	store, _ := newTestStore(t)
	return NewTokenService(newTestSigner(t), store, accessTTL, refreshTTL)
}

var codePattern = regexp.MustCompile(`\[(\d{6})\]\.$`)

// extractCode pulls the six digit code out of a sent SMS message
func extractCode(t *testing.T, message string) string {
	t.Helper()

	match := codePattern.FindStringSubmatch(message)
	if match == nil {
		t.Fatalf("no verification code found in message %q", message)
	}
	return match[1]
}
