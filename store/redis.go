package store

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"
)

// The redis store keeps the state of one session in Redis, for hosts that run
// sessions out of process. The session owns its keys, Reset deletes them.
// The keys namespace is organized as follows:
// - `/<prefix>/session/<sessionID>/notes` list of JSON encoded notepad entries
// - `/<prefix>/session/<sessionID>/slots` hash of JSON encoded bookings by `date time`
// - `/<prefix>/session/<sessionID>/counter` identifier counter
// When ttl is set, every write extends the expiration of the written key.

type redisStore struct {
	client    redis.UniversalClient
	prefix    string
	sessionID string
	ttl       time.Duration
}

// NewRedisStore returns a store for the session backed by the Redis client
func NewRedisStore(client redis.UniversalClient, prefix, sessionID string, ttl time.Duration) Store {
	return &redisStore{
		client:    client,
		prefix:    prefix,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (m *redisStore) key(name string) string {
	return path.Join("/", m.prefix, "session", m.sessionID, name)
}

func (m *redisStore) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if m.ttl > 0 {
		pipe.Expire(ctx, key, m.ttl)
	}
}

func (m *redisStore) Notes(ctx context.Context) ([]simmodel.NoteEntry, error) {
	data, err := m.client.LRange(ctx, m.key("notes"), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read notes from Redis")
	}

	notes := make([]simmodel.NoteEntry, 0, len(data))
	for _, item := range data {
		var entry simmodel.NoteEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.ContextKV(ctx, xlog.ERROR,
				"session", m.sessionID,
				"reason", "unmarshal note",
				"err", err.Error())
			continue
		}
		notes = append(notes, entry)
	}
	return notes, nil
}

func (m *redisStore) WriteNote(ctx context.Context, entry simmodel.NoteEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal note")
	}

	key := m.key("notes")
	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, data)
		m.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to write note to Redis")
	}
	return nil
}

func (m *redisStore) AppendNote(ctx context.Context, entry simmodel.NoteEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal note")
	}

	key := m.key("notes")
	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		m.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to append note to Redis")
	}
	return nil
}

func (m *redisStore) Slots(ctx context.Context) ([]simmodel.BookedSlot, error) {
	data, err := m.client.HGetAll(ctx, m.key("slots")).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read slots from Redis")
	}

	list := make([]simmodel.BookedSlot, 0, len(data))
	for field, item := range data {
		var b simmodel.BookedSlot
		if err := json.Unmarshal([]byte(item), &b); err != nil {
			logger.ContextKV(ctx, xlog.ERROR,
				"session", m.sessionID,
				"reason", "unmarshal slot",
				"slot", field,
				"err", err.Error())
			continue
		}
		list = append(list, b)
	}
	sortBooked(list)
	return list, nil
}

func (m *redisStore) GetSlot(ctx context.Context, slot simmodel.Slot) (*simmodel.BookedSlot, error) {
	item, err := m.client.HGet(ctx, m.key("slots"), slot.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read slot from Redis")
	}

	var b simmodel.BookedSlot
	if err := json.Unmarshal([]byte(item), &b); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal slot %s", slot)
	}
	return &b, nil
}

func (m *redisStore) BookSlot(ctx context.Context, booked *simmodel.BookedSlot) (bool, error) {
	data, err := json.Marshal(booked)
	if err != nil {
		return false, errors.Wrap(err, "failed to marshal slot")
	}

	key := m.key("slots")
	// HSETNX keeps the slot key unique even with concurrent writers
	added, err := m.client.HSetNX(ctx, key, booked.Slot.String(), data).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to book slot in Redis")
	}
	if added && m.ttl > 0 {
		if err := m.client.Expire(ctx, key, m.ttl).Err(); err != nil {
			return true, errors.Wrap(err, "failed to set slots expiration")
		}
	}
	return added, nil
}

func (m *redisStore) NextID(ctx context.Context) (uint64, error) {
	key := m.key("counter")
	var incr *redis.IntCmd
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		m.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment counter in Redis")
	}
	return uint64(incr.Val()), nil
}

func (m *redisStore) Reset(ctx context.Context) error {
	keys := []string{m.key("notes"), m.key("slots"), m.key("counter")}
	if err := m.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "failed to reset session %s in Redis", m.sessionID)
	}
	return nil
}

// SessionKeys returns the Redis keys owned by the session
func SessionKeys(prefix, sessionID string) []string {
	s := &redisStore{prefix: prefix, sessionID: sessionID}
	return []string{s.key("notes"), s.key("slots"), s.key("counter")}
}
