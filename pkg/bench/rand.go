package bench

import (
	"math/bits"
	"math/rand"
)

// Generator draws uniformly random symbols from an alphabet. Each byte of the
// alphabet is one symbol, so multi-byte characters are split; Config.Check
// only admits ASCII alphabets. It is deterministic for a given seed and is not safe for concurrent use.
type Generator struct {
	src      rand.Source
	alphabet string
	idxBits  uint  // bits needed to index the alphabet
	idxMask  int64 // all 1-bits, idxBits wide
	idxMax   int   // # of indices fitting in 63 bits
}

func NewGenerator(alphabet string, seed int64) *Generator {
	if alphabet == "" {
		alphabet = defaultAlphabet
	}
	n := uint(bits.Len(uint(len(alphabet) - 1)))
	if n == 0 {
		n = 1
	}
	return &Generator{
		src:      rand.NewSource(seed),
		alphabet: alphabet,
		idxBits:  n,
		idxMask:  1<<n - 1,
		idxMax:   63 / int(n),
	}
}

// Bytes returns n random symbols.
func (g *Generator) Bytes(n int) []byte {
	b := make([]byte, n)
	// A src.Int63() generates 63 random bits, enough for idxMax symbols!
	for i, cache, remain := n-1, g.src.Int63(), g.idxMax; i >= 0; {
		if remain == 0 {
			cache, remain = g.src.Int63(), g.idxMax
		}
		if idx := int(cache & g.idxMask); idx < len(g.alphabet) {
			b[i] = g.alphabet[idx]
			i--
		}
		cache >>= g.idxBits
		remain--
	}
	return b
}

func (g *Generator) String(n int) string {
	return string(g.Bytes(n))
}
