// Package session provides the gateway session stores.
package session

import (
	"context"
	"encoding/json"
	"time"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "mutant-admin:session:"

type redisStore struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

// NewRedisStore stores sessions as JSON values that expire with the session.
func NewRedisStore(client *redis.Client, keyPrefix string) service.SessionStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisStore{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *redisStore) key(id string) string {
	return s.keyPrefix + id
}

func (s *redisStore) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return errors.Errorf("session %s is already expired", session.ID)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.client.Set(ctx, s.key(session.ID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainerrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	session := new(entity.Session)
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}
	if session.Expired(s.now()) {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
