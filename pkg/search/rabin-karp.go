package search

import "bytes"

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm because of its slow worst case behavior. Here it reports every
// (overlapping) occurrence so it can be timed and checked against Knuth-Morris-Pratt.
type RabinKarp struct{}

func NewRabinKarp() *RabinKarp {
	return new(RabinKarp)
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	if nn := rabinKarpFinder(text, pattern, 1); len(nn) > 0 {
		return nn[0]
	}
	return -1
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return rk.FindIndex([]byte(text), []byte(pattern))
}

func (rk *RabinKarp) FindAll(text, pattern []byte) []int {
	return rabinKarpFinder(text, pattern, -1)
}

func (rk *RabinKarp) FindAllString(text, pattern string) []int {
	return rabinKarpFinder([]byte(text), []byte(pattern), -1)
}

// PrimeRK is the prime base used in Rabin-Karp algorithm.
const PrimeRK = 16777619

// rabinKarpFinder returns the offsets of sep in s, stopping after limit
// matches when limit is positive. Hash hits are verified byte for byte.
func rabinKarpFinder(s, sep []byte, limit int) []int {
	n := len(sep)
	if n == 0 || n > len(s) {
		return nil
	}
	var ret []int
	hashsep, pow := hashBytes(sep)
	var h uint32
	for i := 0; i < n; i++ {
		h = h*PrimeRK + uint32(s[i])
	}
	if h == hashsep && bytes.Equal(s[:n], sep) {
		ret = append(ret, 0)
		if limit > 0 && len(ret) == limit {
			return ret
		}
	}
	for i := n; i < len(s); {
		h *= PrimeRK
		h += uint32(s[i])
		h -= pow * uint32(s[i-n])
		i++
		if h == hashsep && bytes.Equal(s[i-n:i], sep) {
			ret = append(ret, i-n)
			if limit > 0 && len(ret) == limit {
				return ret
			}
		}
	}
	return ret
}

// hashBytes returns the hash and the appropriate multiplicative
// factor for use in Rabin-Karp algorithm.
func hashBytes(sep []byte) (uint32, uint32) {
	hash := uint32(0)
	for i := 0; i < len(sep); i++ {
		hash = hash*PrimeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, PrimeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}
