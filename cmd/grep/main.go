package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scottcagno/kmp/pkg/filesystem"
	"github.com/scottcagno/kmp/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s PATTERN GLOB\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := filesystem.GrepWriter(os.Stdout, flag.Arg(0), flag.Arg(1)); err != nil {
		logger.DefaultLogger.Fatalf("%v", err)
	}
}
