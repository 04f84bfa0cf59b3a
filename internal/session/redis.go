package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
)

const (
	sessionKeyPrefix = "session:v1:"
	identityField    = "identity"
	credentialField  = "credential"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed session store. Each session lives in a
// single hash so Clear is one DEL and readers never see a half-cleared
// session.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) key(sid string) string {
	return sessionKeyPrefix + sid
}

func (s *redisStore) saveField(ctx context.Context, sid, field string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key(sid), field, payload)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(sid), s.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *redisStore) loadField(ctx context.Context, sid, field string, out any) (bool, error) {
	raw, err := s.client.HGet(ctx, s.key(sid), field).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) SaveIdentity(ctx context.Context, sid string, id identity.Identity) error {
	return s.saveField(ctx, sid, identityField, id)
}

func (s *redisStore) Identity(ctx context.Context, sid string) (*identity.Identity, error) {
	var id identity.Identity
	ok, err := s.loadField(ctx, sid, identityField, &id)
	if err != nil || !ok {
		return nil, err
	}
	return &id, nil
}

func (s *redisStore) SaveCredential(ctx context.Context, sid string, cred pass.Credential) error {
	return s.saveField(ctx, sid, credentialField, cred)
}

func (s *redisStore) Credential(ctx context.Context, sid string) (*pass.Credential, error) {
	var cred pass.Credential
	ok, err := s.loadField(ctx, sid, credentialField, &cred)
	if err != nil || !ok {
		return nil, err
	}
	return &cred, nil
}

func (s *redisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}
