package morton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackKnownCodes(t *testing.T) {
	c := New()
	cases := []struct {
		q, r int
		code int64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{1, 2, 9},
		{20, 26, 920},
		{-1, 0, 4611686018427387905},
		{0, -1, -9223372036854775806},
		{-2, 3, 4611686018427387918},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, c.Pack(tc.q, tc.r), "pack(%d, %d)", tc.q, tc.r)
		q, r := c.Unpack(tc.code)
		assert.Equal(t, tc.q, q, "unpack(%d).q", tc.code)
		assert.Equal(t, tc.r, r, "unpack(%d).r", tc.code)
	}
}

func TestRoundTrip(t *testing.T) {
	var c Codec
	limit := 1<<(Bits-1) - 1
	values := []int{0, 1, -1, 7, -7, 666, -666, 123456789, -123456789, limit, -limit}
	for _, q := range values {
		for _, r := range values {
			gotQ, gotR := c.Unpack(c.Pack(q, r))
			assert.Equal(t, q, gotQ)
			assert.Equal(t, r, gotR)
		}
	}
}

func TestPackDistinct(t *testing.T) {
	c := New()
	seen := make(map[int64][2]int)
	for q := -20; q <= 20; q++ {
		for r := -20; r <= 20; r++ {
			code := c.Pack(q, r)
			if prev, ok := seen[code]; ok {
				t.Fatalf("code %d shared by %v and (%d, %d)", code, prev, q, r)
			}
			seen[code] = [2]int{q, r}
		}
	}
}

func TestPackOutOfRange(t *testing.T) {
	c := New()
	assert.Panics(t, func() { c.Pack(1<<(Bits-1), 0) })
	assert.Panics(t, func() { c.Pack(0, -(1 << (Bits - 1))) })
}
