package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/scottcagno/kmp/pkg/logger"
	"github.com/scottcagno/kmp/pkg/searchtool"
)

var (
	cacheSize  = flag.Int("cache-size", 256, "number of compiled patterns to keep")
	maxTextLen = flag.Int("max-text", 64<<20, "largest text accepted, in bytes")
	logLevel   = flag.String("log-level", "info", "trace, debug, info, warn or error")
)

func main() {
	flag.Parse()

	// stdout carries the protocol, so logs stay on stderr
	log := logger.NewLogger()
	level := *logLevel
	if v, ok := os.LookupEnv("KMP_LOG_LEVEL"); ok {
		level = v
	}
	lv, err := logger.ParseLevel(level)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.SetLevel(lv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := searchtool.NewServer(&searchtool.ServerConfig{
		CacheSize:  *cacheSize,
		MaxTextLen: *maxTextLen,
		Logger:     log,
	})
	log.Info("serving search tools on stdio")
	if err := searchtool.ServeStdio(ctx, server); err != nil {
		log.Fatalf("%v", err)
	}
	log.Info("shutting down")
}
