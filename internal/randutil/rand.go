// Package randutil derives reproducible random sources from integer seeds.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from the same seed so nearby seeds give unrelated
// streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unchanged unless it is zero, in which case a fresh
// non-zero seed is drawn from crypto/rand.
func Seed(seed int64) int64 {
	for seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			panic("randutil: failed to read random seed: " + err.Error())
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	}
	return seed
}

// Derive returns the seed of the i-th independent stream under base.
func Derive(base int64, i int) int64 {
	return int64(mix(uint64(base) + uint64(i)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
