package challenge

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

//go:generate mockgen -source=challenge.go -package challenge -destination random_stringer_mock.go RandomStringer
type RandomStringer interface {
	Create() (string, error)
}

type randomStringer struct {
}

func NewRandomStringer() RandomStringer {
	return &randomStringer{}
}

// Create returns 32 random bytes in hex, used as per-flow oauth state.
func (s randomStringer) Create() (string, error) {
	return randomBytesInHex(32)
}

func randomBytesInHex(count int) (string, error) {
	buf := make([]byte, count)

	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return "", fmt.Errorf("could not generate random %d bytes: %v", count, err)
	}

	return hex.EncodeToString(buf), nil
}
