package mystore

import (
	"context"
	"fmt"
	"os"
)

type ctxTransactionKey struct{}

//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	Delete(c context.Context, uid string) error
	List(c context.Context) ([]T, error)
}

type Backend string

const (
	BackendMemory    Backend = "memory"
	BackendFile      Backend = "file"
	BackendRedis     Backend = "redis"
	BackendDatastore Backend = "datastore"
)

type Options struct {
	Backend Backend
	// Dir is the directory used by the file backend
	Dir string
	// RedisAddr is host:port of the redis server
	RedisAddr string
	// Namespace prefixes keys (redis) or names the file (file backend), defaults to the kind of T
	Namespace string
}

// New creates the store selected by opts. Without an explicit backend Google Cloud Datastore is used
// when running on Google Cloud, and an in-memory store otherwise.
func New[T any](c context.Context, opts Options) (Store[T], func(), error) {
	backend := opts.Backend
	if backend == "" {
		backend = BackendMemory
		if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
			backend = BackendDatastore
		}
	}

	switch backend {
	case BackendMemory:
		return NewInMemoryStore[T](c)
	case BackendFile:
		return newFileStore[T](c, opts.Dir, namespace[T](opts))
	case BackendRedis:
		return newRedisStore[T](c, opts.RedisAddr, namespace[T](opts))
	case BackendDatastore:
		return newGcloudStore[T](c)
	default:
		return nil, func() {}, fmt.Errorf("unknown store backend '%s'", backend)
	}
}

func namespace[T any](opts Options) string {
	if opts.Namespace != "" {
		return opts.Namespace
	}
	return kindOf[T]()
}

func kindOf[T any]() string {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	for i := len(kind) - 1; i >= 0; i-- {
		if kind[i] == '.' {
			return kind[i+1:]
		}
	}
	return kind
}
