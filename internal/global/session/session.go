package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"glowup-diaries/internal/global/database"

	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the session token.
const CookieName = "gud_session"

const keyPrefix = "session:"

var client *redis.Client

// Init wires the session store to the shared Redis client.
func Init() {
	client = database.Redis
}

// SetClient replaces the store client; used by tests with redismock.
func SetClient(c *redis.Client) {
	client = c
}

// NewID returns a random 128-bit session id.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// Create records a live session for the user with the given TTL.
func Create(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	return client.Set(ctx, keyPrefix+sid, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// UserID resolves a session id to its user. Returns false for missing
// or expired sessions.
func UserID(ctx context.Context, sid string) (uint, bool) {
	val, err := client.Get(ctx, keyPrefix+sid).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Destroy invalidates a session. Used on logout and when a signed-in
// non-admin hits the admin gate.
func Destroy(ctx context.Context, sid string) error {
	return client.Del(ctx, keyPrefix+sid).Err()
}
