package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
)

type redisStore[T any] struct {
	sync.Mutex
	client    *redis.Client
	namespace string
}

func newRedisStore[T any](c context.Context, addr string, namespace string) (*redisStore[T], func(), error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	err := client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, func() {}, fmt.Errorf("error connecting to redis at %s: %s", addr, err)
	}

	return &redisStore[T]{
			client:    client,
			namespace: namespace,
		}, func() {
			client.Close()
		}, nil
}

func (s *redisStore[T]) key(uid string) string {
	return fmt.Sprintf("%s:%s", s.namespace, uid)
}

// RunInTransaction serializes the callers within this process, redis itself is not locked.
func (s *redisStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()
	defer s.Unlock()

	return f(context.WithValue(c, ctxTransactionKey{}, true))
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling %s: %s", s.key(uid), err)
	}

	err = s.client.Set(c, s.key(uid), data, 0).Err()
	if err != nil {
		return fmt.Errorf("error storing %s: %s", s.key(uid), err)
	}

	return nil
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	data, err := s.client.Get(c, s.key(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("error fetching %s: %s", s.key(uid), err)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, false, fmt.Errorf("error parsing %s: %s", s.key(uid), err)
	}

	return value, true, nil
}

func (s *redisStore[T]) Delete(c context.Context, uid string) error {
	err := s.client.Del(c, s.key(uid)).Err()
	if err != nil {
		return fmt.Errorf("error deleting %s: %s", s.key(uid), err)
	}

	return nil
}

func (s *redisStore[T]) List(c context.Context) ([]T, error) {
	keys := []string{}
	iter := s.client.Scan(c, 0, s.namespace+":*", 100).Iterator()
	for iter.Next(c) {
		keys = append(keys, iter.Val())
	}
	err := iter.Err()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %s", s.namespace, err)
	}
	sort.Strings(keys)

	result := make([]T, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(c, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("error fetching %s: %s", key, err)
		}

		var value T
		err = json.Unmarshal(data, &value)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %s", key, err)
		}
		result = append(result, value)
	}

	return result, nil
}
