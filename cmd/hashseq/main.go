package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Hash    HashCmd          `cmd:"" help:"Derive hash value sequences from inputs"`
	Bloom   BloomCmd         `cmd:"" help:"Build a bloom filter from a member list and test keys against it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hashseq"),
		kong.Description("Derive many 64-bit hash values per input from two keyed hash computations"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}
	logger := log.NewWithOptions(os.Stderr, opts)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
