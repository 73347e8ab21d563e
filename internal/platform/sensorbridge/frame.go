package sensorbridge

import (
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

// ErrBadFrame is returned for a sensor frame that is not a msgpack array of
// three finite numbers.
var ErrBadFrame = errors.New("sensorbridge: bad sensor frame")

// DecodeFrame decodes one msgpack [x, y, z] accelerometer frame in g.
func DecodeFrame(data []byte) (maze.Accel, error) {
	var v []float64
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return maze.Accel{}, fmt.Errorf("%w: %w", ErrBadFrame, err)
	}
	if len(v) != 3 {
		return maze.Accel{}, fmt.Errorf("%w: %d values", ErrBadFrame, len(v))
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return maze.Accel{}, fmt.Errorf("%w: non-finite value", ErrBadFrame)
		}
	}
	return maze.Accel{X: v[0], Y: v[1], Z: v[2]}, nil
}
