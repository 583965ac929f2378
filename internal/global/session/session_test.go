package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	db, mock := redismock.NewClientMock()
	SetClient(db)

	ctx := context.Background()
	sid := NewID()

	mock.ExpectSet(keyPrefix+sid, "42", time.Hour).SetVal("OK")
	require.NoError(t, Create(ctx, sid, 42, time.Hour))

	mock.ExpectGet(keyPrefix + sid).SetVal("42")
	id, ok := UserID(ctx, sid)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	mock.ExpectDel(keyPrefix + sid).SetVal(1)
	require.NoError(t, Destroy(ctx, sid))

	mock.ExpectGet(keyPrefix + sid).RedisNil()
	_, ok = UserID(ctx, sid)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserIDRejectsCorruptValue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	SetClient(db)

	mock.ExpectGet(keyPrefix + "abc").SetVal("not-a-number")
	_, ok := UserID(context.Background(), "abc")
	assert.False(t, ok)
}

func TestNewIDIsRandomHex(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
