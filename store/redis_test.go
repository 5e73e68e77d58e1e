package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	rediscon "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	redisContainer, err := rediscon.Run(ctx, "redis:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	host, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	options, err := redis.ParseURL(host)
	require.NoError(t, err)

	client := redis.NewClient(options)
	t.Cleanup(func() {
		_ = client.Close()
	})
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")
	return client
}

func Test_RedisStore(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()
	root := fmt.Sprintf("test-%d", time.Now().Unix())

	testStore(t, store.NewRedisStore(client, root, "s1", 0))

	t.Run("isolated sessions", func(t *testing.T) {
		st1 := store.NewRedisStore(client, root, "s2", time.Hour)
		st2 := store.NewRedisStore(client, root, "s3", time.Hour)

		_, err := st1.NextID(ctx)
		require.NoError(t, err)
		require.NoError(t, st1.AppendNote(ctx, simmodel.NoteEntry{Mode: simmodel.NoteAppend, Text: "one"}))
		added, err := st1.BookSlot(ctx, &simmodel.BookedSlot{
			Slot:      simmodel.Slot{Date: "2025-05-27", Time: "10:00"},
			MeetingID: "INT-000001",
		})
		require.NoError(t, err)
		assert.True(t, added)

		id, err := st2.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
		notes, err := st2.Notes(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
		got, err := st2.GetSlot(ctx, simmodel.Slot{Date: "2025-05-27", Time: "10:00"})
		require.NoError(t, err)
		assert.Nil(t, got)

		for _, key := range store.SessionKeys(root, "s2") {
			ttl, err := client.TTL(ctx, key).Result()
			require.NoError(t, err)
			assert.Greater(t, ttl, time.Duration(0), key)
		}

		require.NoError(t, st1.Reset(ctx))
		for _, key := range store.SessionKeys(root, "s2") {
			n, err := client.Exists(ctx, key).Result()
			require.NoError(t, err)
			assert.Zero(t, n, key)
		}
		require.NoError(t, st2.Reset(ctx))
	})

	t.Run("corrupted note is skipped", func(t *testing.T) {
		st := store.NewRedisStore(client, root, "s4", 0)
		require.NoError(t, st.AppendNote(ctx, simmodel.NoteEntry{Mode: simmodel.NoteAppend, Text: "ok"}))
		require.NoError(t, client.RPush(ctx, store.SessionKeys(root, "s4")[0], "not json").Err())

		notes, err := st.Notes(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "ok", notes[0].Text)
		require.NoError(t, st.Reset(ctx))
	})
}

func Test_RedisStore_Unavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	st := store.NewRedisStore(client, "test", "s1", 0)

	_, err := st.Notes(ctx)
	assert.ErrorContains(t, err, "failed to read notes from Redis")
	assert.ErrorContains(t, st.WriteNote(ctx, simmodel.NoteEntry{Text: "X"}), "failed to write note to Redis")
	assert.ErrorContains(t, st.AppendNote(ctx, simmodel.NoteEntry{Text: "X"}), "failed to append note to Redis")
	_, err = st.Slots(ctx)
	assert.ErrorContains(t, err, "failed to read slots from Redis")
	_, err = st.GetSlot(ctx, simmodel.Slot{Date: "2025-05-27", Time: "10:00"})
	assert.ErrorContains(t, err, "failed to read slot from Redis")
	_, err = st.BookSlot(ctx, &simmodel.BookedSlot{Slot: simmodel.Slot{Date: "2025-05-27", Time: "10:00"}})
	assert.ErrorContains(t, err, "failed to book slot in Redis")
	_, err = st.NextID(ctx)
	assert.ErrorContains(t, err, "failed to increment counter in Redis")
	assert.ErrorContains(t, st.Reset(ctx), "failed to reset session s1 in Redis")
}
