package types

import (
	"strings"

	"github.com/arthur-debert/omni/pkg/errors"
)

// Direction indicates whether the environment is brought up or torn down
type Direction string

const (
	// DirectionUp runs operations in declaration order, calling Up
	DirectionUp Direction = "up"

	// DirectionDown runs operations in reverse declaration order, calling Down
	DirectionDown Direction = "down"
)

// ParseDirection converts a subcommand name into a Direction
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionUp, DirectionDown:
		return d, nil
	default:
		return "", errors.Newf(errors.ErrUnknownDirection, "unknown operation %s", s).
			WithDetail("direction", s)
	}
}

// Valid reports whether d is one of the known directions
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

func (d Direction) String() string {
	return string(d)
}
