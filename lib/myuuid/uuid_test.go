package myuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRealUUIDer(t *testing.T) {
	uuider := RealUUIDer{}

	first := uuider.Create()
	second := uuider.Create()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestShortUUIDer(t *testing.T) {
	uuider := ShortUUIDer{}

	first := uuider.Create()
	second := uuider.Create()

	assert.Len(t, first, 8)
	assert.Regexp(t, "^[0-9a-f]{8}$", first)
	assert.NotEqual(t, first, second)
}
