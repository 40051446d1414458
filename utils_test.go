package linearhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Pins the open question flagged in spec.md section 9 against the
// source's round_up_to_next_power_of_2: the obvious correct reading is
// that 0 and 1 both round up to 1.
func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{31, 32},
		{32, 32},
		{33, 64},
		{1023, 1024},
		{1024, 1024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPowerOfTwo(tt.in), "nextPowerOfTwo(%d)", tt.in)
	}
}

func TestCapacityFromSize(t *testing.T) {
	assert.Equal(t, 0, CapacityFromSize[int, int](0))
	assert.Greater(t, CapacityFromSize[int, int](1<<20), 0)

	small := CapacityFromSize[int, int](128)
	large := CapacityFromSize[int, int](1 << 16)
	assert.GreaterOrEqual(t, large, small)
}
