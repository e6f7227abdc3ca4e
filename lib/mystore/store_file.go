package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps all entities of one namespace in a single json document. It is meant for
// small, single-process state such as the credentials of a command line session.
type fileStore[T any] struct {
	sync.Mutex
	filename string
}

func newFileStore[T any](c context.Context, dir string, namespace string) (*fileStore[T], func(), error) {
	if dir == "" {
		return nil, func() {}, fmt.Errorf("file store requires a directory")
	}
	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating store directory %s: %s", dir, err)
	}

	return &fileStore[T]{
		filename: filepath.Join(dir, namespace+".json"),
	}, func() {}, nil
}

func (s *fileStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()
	defer s.Unlock()

	return f(context.WithValue(c, ctxTransactionKey{}, true))
}

func (s *fileStore[T]) Put(c context.Context, uid string, value T) error {
	return s.update(c, func(items map[string]T) {
		items[uid] = value
	})
}

func (s *fileStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	if c.Value(ctxTransactionKey{}) == nil {
		s.Lock()
		defer s.Unlock()
	}

	items, err := s.load()
	if err != nil {
		var zero T
		return zero, false, err
	}
	result, exists := items[uid]

	return result, exists, nil
}

func (s *fileStore[T]) Delete(c context.Context, uid string) error {
	return s.update(c, func(items map[string]T) {
		delete(items, uid)
	})
}

func (s *fileStore[T]) List(c context.Context) ([]T, error) {
	if c.Value(ctxTransactionKey{}) == nil {
		s.Lock()
		defer s.Unlock()
	}

	items, err := s.load()
	if err != nil {
		return nil, err
	}

	return sortedValues(items), nil
}

func (s *fileStore[T]) update(c context.Context, mutate func(items map[string]T)) error {
	if c.Value(ctxTransactionKey{}) == nil {
		s.Lock()
		defer s.Unlock()
	}

	items, err := s.load()
	if err != nil {
		return err
	}

	mutate(items)

	return s.save(items)
}

func (s *fileStore[T]) load() (map[string]T, error) {
	items := map[string]T{}

	data, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return items, nil
		}
		return nil, fmt.Errorf("error reading %s: %s", s.filename, err)
	}

	err = json.Unmarshal(data, &items)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %s", s.filename, err)
	}

	return items, nil
}

func (s *fileStore[T]) save(items map[string]T) error {
	data, err := json.MarshalIndent(items, "", "\t")
	if err != nil {
		return fmt.Errorf("error marshalling %s: %s", s.filename, err)
	}

	// replace atomically
	tmp := s.filename + ".tmp"
	err = os.WriteFile(tmp, data, 0o600)
	if err != nil {
		return fmt.Errorf("error writing %s: %s", tmp, err)
	}

	err = os.Rename(tmp, s.filename)
	if err != nil {
		return fmt.Errorf("error replacing %s: %s", s.filename, err)
	}

	return nil
}
