package myuuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uuid.go -package myuuid -destination uuid_mock.go UUIDer
type UUIDer interface {
	Create() string
}

type RealUUIDer struct{}

func (u RealUUIDer) Create() string {
	return uuid.New().String()
}

// ShortUUIDer creates 8 hex character ids, short enough to type on a command line. Only use it
// for small collections.
type ShortUUIDer struct{}

func (u ShortUUIDer) Create() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
