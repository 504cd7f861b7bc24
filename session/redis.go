package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session values in the hash "session:<id>".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore keeps sessions in client, each expiring ttl after its last save.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(id string) string {
	return "session:" + id
}

// Load reads the hash named by the cookie id. Unknown or malformed ids get a new id.
func (s *RedisStore) Load(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return New(uuid.NewString()), nil
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return New(uuid.NewString()), nil
	}

	vals, err := s.client.HGetAll(ctx, redisKey(id.String())).Result()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if len(vals) == 0 {
		// expired or unknown id; never adopt a client-chosen id
		return New(uuid.NewString()), nil
	}
	return &Session{ID: id.String(), Values: vals}, nil
}

// Save replaces the stored hash with the session values and refreshes its ttl.
func (s *RedisStore) Save(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	key := redisKey(sess.ID)

	fields := make([]any, 0, 2*len(sess.Values))
	for k, v := range sess.Values {
		fields = append(fields, k, v)
	}

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		if len(fields) > 0 {
			p.HSet(ctx, key, fields...)
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	setCookie(w, sess.ID, int(s.ttl.Seconds()))
	return nil
}
