package match

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/swipe-match/internal/logger"
)

func newTestLedger(e *testEnv) *countingLedger {
	return newCountingLedger(e.appCtx.Decisions, e.appCtx.RedisCache, logger.Discard())
}

// assertCountConsistent checks that a cached count equals a fresh DB count.
func assertCountConsistent(t *testing.T, e *testEnv, profileID string) {
	t.Helper()
	cached, ok := e.cachedCount(t, profileID)
	require.True(t, ok, "count for %s should be cached", profileID)

	n, err := e.appCtx.Decisions.CountLikers(context.Background(), profileID)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(n, 10), cached, "count for %s", profileID)
}

func TestCountingLedger_LikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t)
	l := newTestLedger(e)
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u1", 1))

	require.NoError(t, l.Upsert(ctx, "u4", "u1", true))
	require.NoError(t, l.Upsert(ctx, "u4", "u1", true))

	v, _ := e.cachedCount(t, "u1")
	assert.Equal(t, "2", v)
	assertCountConsistent(t, e, "u1")

	// like -> pass takes it back
	require.NoError(t, l.Upsert(ctx, "u4", "u1", false))
	v, _ = e.cachedCount(t, "u1")
	assert.Equal(t, "1", v)
	assertCountConsistent(t, e, "u1")
}

func TestCountingLedger_PassHidesIncomingLike(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t)
	l := newTestLedger(e)
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u1", 1))
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u2", 1))

	// u1 flips its like on u2 to a pass: u2 loses a liker and u2's like on
	// u1 is now hidden from u1
	require.NoError(t, l.Upsert(ctx, "u1", "u2", false))

	assertCountConsistent(t, e, "u1")
	assertCountConsistent(t, e, "u2")
	v, _ := e.cachedCount(t, "u1")
	assert.Equal(t, "0", v)
}

func TestCountingLedger_UnpassRevealsIncomingLike(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t)
	l := newTestLedger(e)
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u1", 1))

	// u1 passed u3 who liked u1; turning the pass into a like shows u3 again
	require.NoError(t, l.Upsert(ctx, "u1", "u3", true))

	v, _ := e.cachedCount(t, "u1")
	assert.Equal(t, "2", v)
	assertCountConsistent(t, e, "u1")

	// u3's count was never cached, so nothing was written for it
	_, ok := e.cachedCount(t, "u3")
	assert.False(t, ok)
}

func TestCountingLedger_LikeFromPassedUserNotCounted(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t)
	l := newTestLedger(e)
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u3", 0))

	// u4 passes u3 first, then u3 likes u4: hidden from u4, and u3 was never
	// liked so its count does not move either
	require.NoError(t, e.appCtx.RedisCache.SetLikeCount(ctx, "u4", 0))
	require.NoError(t, l.Upsert(ctx, "u4", "u3", false))
	require.NoError(t, l.Upsert(ctx, "u3", "u4", true))

	assertCountConsistent(t, e, "u3")
	assertCountConsistent(t, e, "u4")
	v, _ := e.cachedCount(t, "u4")
	assert.Equal(t, "0", v)
}

func TestCountingLedger_CacheFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t)
	l := newTestLedger(e)

	e.redis.SetError("LOADING redis is loading")
	require.NoError(t, l.Upsert(ctx, "u4", "u2", true))
	e.redis.SetError("")

	liked, found, err := l.Lookup(ctx, "u4", "u2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, liked)
}

func TestCountingLedger_Load(t *testing.T) {
	e := setupEnv(t)
	l := newTestLedger(e)

	got, err := l.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"u2": true, "u3": false}, got)
}
