package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/scottcagno/kmp/pkg/bench"
	"github.com/scottcagno/kmp/pkg/logger"
)

var (
	sizes      = flag.String("sizes", envOr("KMP_SIZES", "1000,10000,100000,1000000,10000000"), "comma separated text sizes")
	patternLen = flag.Int("pattern-len", envIntOr("KMP_PATTERN_LEN", 100), "random pattern length")
	alphabet   = flag.String("alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "symbols to draw text and pattern from")
	seed       = flag.Int64("seed", int64(envIntOr("KMP_SEED", 0)), "random seed (0 uses the clock)")
	algo       = flag.String("algo", "kmp", "search algorithm: kmp, rabin-karp or all")
	csvPath    = flag.String("csv", "", "also write results as csv to this file")
	logLevel   = flag.String("log-level", envOr("KMP_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
)

func main() {
	flag.Parse()

	log := logger.NewLogger()
	lv, err := logger.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.SetLevel(lv)

	ss, err := bench.ParseSizes(*sizes)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	algos := []string{*algo}
	if strings.EqualFold(*algo, "all") {
		algos = []string{"kmp", "rabin-karp"}
	}

	base := &bench.Config{
		Sizes:      ss,
		PatternLen: *patternLen,
		Alphabet:   *alphabet,
		Seed:       *seed,
	}
	if err := base.Check(); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("seed: %d", base.Seed)

	for i, name := range algos {
		if i > 0 {
			fmt.Println()
		}
		if err := TimeSearcher(ctx, base.WithAlgorithm(name), log); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// TimeSearcher runs one benchmark and prints its table and log-log slope.
func TimeSearcher(ctx context.Context, conf *bench.Config, log *logger.Logger) error {
	r, err := bench.NewRunner(conf, log)
	if err != nil {
		return err
	}
	log.Debugf("config:\n%s", conf)
	results, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if err := bench.WriteTable(os.Stdout, strings.ToUpper(conf.Algorithm), results); err != nil {
		return err
	}
	if slope, err := bench.Slope(results); err == nil {
		fmt.Printf("log-log slope: %.3f (1.0 is linear)\n", slope)
	} else {
		log.Warnf("slope: %v", err)
	}
	if *csvPath == "" {
		return nil
	}
	path := *csvPath
	if strings.EqualFold(*algo, "all") {
		path = strings.TrimSuffix(path, ".csv") + "-" + conf.Algorithm + ".csv"
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bench.WriteCSV(fd, results); err != nil {
		fd.Close()
		return err
	}
	log.Infof("results written to %s", path)
	return fd.Close()
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
