package uuidx

import (
	"io"

	"github.com/google/uuid"
)

// NewV4 returns a random (version 4) UUID read from crypto/rand.
func NewV4() (UUID, error) {
	g, err := uuid.NewRandom()
	if err != nil {
		return Nil, NewIO(err)
	}
	return UUID(g), nil
}

// NewV4FromReader returns a version 4 UUID whose random bits come from r.
func NewV4FromReader(r io.Reader) (UUID, error) {
	g, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return Nil, NewIO(err)
	}
	return UUID(g), nil
}
