package main

import (
	"flag"
	"log"
	"os"

	"honnef.co/go/dragon/internal/platform/config"
	"honnef.co/go/dragon/internal/tools/dragonplot"
)

func main() {
	cfg, err := dragonplot.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse arguments: %v", err)
	}
	logger := log.New(os.Stderr, "dragon: ", 0)
	if err := dragonplot.Run(cfg, os.Stdout, logger); err != nil {
		config.Exitf("plot dragon: %v", err)
	}
}
