package bmask

import (
	"math/rand"
	"testing"
)

// TestPopcountFallbackMatchesHostIntrinsic cross-checks the portable SWAR
// reference against math/bits.OnesCount64 across a spread of bit patterns.
func TestPopcountFallbackMatchesHostIntrinsic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	cases := []uint64{0, allOnes, 1, 1 << 63, 0x5555555555555555, 0xAAAAAAAAAAAAAAAA}
	for i := 0; i < 200; i++ {
		cases = append(cases, rng.Uint64())
	}
	for _, w := range cases {
		if got, want := popcountFallback(w), popcountWords([]uint64{w}); got != want {
			t.Fatalf("popcountFallback(%#x) = %d, want %d", w, got, want)
		}
	}
}
