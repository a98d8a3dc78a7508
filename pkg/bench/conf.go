package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	defaultPatternLen = 100
	defaultAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultAlgorithm  = "kmp"

	maxSizeAllowed = 1 << 30 // 1 GB of text
)

var defaultSizes = []int{1000, 10000, 100000, 1000000, 10000000}

var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	Sizes      []int  // text sizes to time, in symbols
	PatternLen int    // length of the random pattern
	Alphabet   string // ASCII symbols text and pattern are drawn from, one byte each
	Seed       int64  // random seed; zero picks one from the clock
	Algorithm  string // searcher name, see search.Lookup
}

func DefaultConfig() *Config {
	sizes := make([]int, len(defaultSizes))
	copy(sizes, defaultSizes)
	return &Config{
		Sizes:      sizes,
		PatternLen: defaultPatternLen,
		Alphabet:   defaultAlphabet,
		Algorithm:  defaultAlgorithm,
	}
}

// Check fills in missing options and rejects the ones that cannot be used.
func (conf *Config) Check() error {
	if len(conf.Sizes) == 0 {
		conf.Sizes = append([]int(nil), defaultSizes...)
	}
	for _, n := range conf.Sizes {
		if n <= 0 || n > maxSizeAllowed {
			return fmt.Errorf("%w: size %d out of range (1..%d)", ErrInvalidConfig, n, maxSizeAllowed)
		}
	}
	if conf.PatternLen <= 0 {
		conf.PatternLen = defaultPatternLen
	}
	if conf.Alphabet == "" {
		conf.Alphabet = defaultAlphabet
	}
	for i := 0; i < len(conf.Alphabet); i++ {
		if conf.Alphabet[i] >= utf8.RuneSelf {
			return fmt.Errorf("%w: alphabet %q is not ASCII", ErrInvalidConfig, conf.Alphabet)
		}
	}
	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}
	if conf.Algorithm == "" {
		conf.Algorithm = defaultAlgorithm
	}
	return nil
}

// WithAlgorithm returns a copy of conf that times the named searcher. Call
// Check first so every copy shares the same seed.
func (conf *Config) WithAlgorithm(name string) *Config {
	c := *conf
	c.Sizes = append([]int(nil), conf.Sizes...)
	c.Algorithm = name
	return &c
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Sizes: ")
	for i, n := range conf.Sizes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("\nPatternLen: ")
	sb.WriteString(strconv.Itoa(conf.PatternLen))
	sb.WriteString("\nAlphabet: ")
	sb.WriteString(conf.Alphabet)
	sb.WriteString("\nSeed: ")
	sb.WriteString(strconv.FormatInt(conf.Seed, 10))
	sb.WriteString("\nAlgorithm: ")
	sb.WriteString(conf.Algorithm)
	return sb.String()
}

// ParseSizes parses a comma separated list such as "1000,1e4,100000".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			f, ferr := strconv.ParseFloat(field, 64)
			if ferr != nil || f != float64(int(f)) {
				return nil, fmt.Errorf("%w: bad size %q", ErrInvalidConfig, field)
			}
			n = int(f)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes in %q", ErrInvalidConfig, s)
	}
	return sizes, nil
}
