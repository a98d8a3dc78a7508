package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/scottcagno/kmp/pkg/logger"
	"github.com/scottcagno/kmp/pkg/search"
)

var ErrNotEnoughSamples = errors.New("bench: need at least three timed sizes")

// Result is the outcome of timing one search call.
type Result struct {
	Size    int
	Elapsed time.Duration
	Matches int
}

// Milliseconds returns the elapsed time as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed.Nanoseconds()) / float64(time.Millisecond.Nanoseconds())
}

// Runner generates inputs and times a Searcher over them.
type Runner struct {
	conf     *Config
	searcher search.Searcher
	log      *logger.Logger
}

// NewRunner checks conf and resolves its algorithm. A nil log discards
// progress messages.
func NewRunner(conf *Config, log *logger.Logger) (*Runner, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Check(); err != nil {
		return nil, err
	}
	s, err := search.Lookup(conf.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Runner{
		conf:     conf,
		searcher: s,
		log:      log,
	}, nil
}

// Run times one FindAll call per configured size. Cancellation is checked
// between sizes only; a search in progress always runs to completion.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	gen := NewGenerator(r.conf.Alphabet, r.conf.Seed)
	results := make([]Result, 0, len(r.conf.Sizes))
	for _, n := range r.conf.Sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		text, pattern := gen.Bytes(n), gen.Bytes(r.conf.PatternLen)
		res := Time(r.searcher, text, pattern)
		if r.log != nil {
			r.log.Debugf("%s n=%d took=%s matches=%d", r.searcher, n, res.Elapsed, res.Matches)
		}
		results = append(results, res)
	}
	return results, nil
}

// Time runs a single search and records its duration and match count.
func Time(s search.Searcher, text, pattern []byte) Result {
	start := time.Now()
	matches := s.FindAll(text, pattern)
	return Result{
		Size:    len(text),
		Elapsed: time.Since(start),
		Matches: len(matches),
	}
}

// Slope fits log(elapsed) = a + b*log(size) by least squares and returns b.
// A linear-time search gives a slope near 1, a quadratic one near 2.
func Slope(results []Result) (float64, error) {
	var xs, ys []float64
	for _, r := range results {
		if r.Size <= 0 || r.Elapsed <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(r.Size)))
		ys = append(ys, math.Log(float64(r.Elapsed)))
	}
	if len(xs) < 3 {
		return 0, ErrNotEnoughSamples
	}
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))
	var num, den float64
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}
	if den == 0 {
		return 0, ErrNotEnoughSamples
	}
	return num / den, nil
}
