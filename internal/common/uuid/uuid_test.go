package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestNewString(t *testing.T) {
	s := NewString()
	id, err := Parse(s)
	assert.NoError(t, err)
	assert.True(t, IsV4(id))
}

func TestNewRandom(t *testing.T) {
	id, err := NewRandom()
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.True(t, IsV4(id))
}

func TestParse(t *testing.T) {
	validUUID := "123e4567-e89b-42d3-a456-426614174000"
	id, err := Parse(validUUID)
	assert.NoError(t, err)
	assert.Equal(t, validUUID, id.String())

	_, err = Parse("invalid-uuid")
	assert.Error(t, err)
}

func TestMustParse(t *testing.T) {
	validUUID := "123e4567-e89b-42d3-a456-426614174000"
	id := MustParse(validUUID)
	assert.Equal(t, validUUID, id.String())

	assert.Panics(t, func() {
		MustParse("invalid-uuid")
	})
}

func TestIsV4(t *testing.T) {
	assert.True(t, IsV4(New()))

	v7, err := uuid.NewV7()
	assert.NoError(t, err)
	assert.False(t, IsV4(v7))
}
