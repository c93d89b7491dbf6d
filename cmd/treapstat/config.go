package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	minCount        = 1
	maxCount        = 10_000_000
	defaultCount    = 100_000
	defaultOrder    = orderRandom
	defaultLogLevel = "info"
)

const (
	orderRandom     = "random"
	orderAscending  = "ascending"
	orderDescending = "descending"
)

// config defines the configuration options for treapstat.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Count      int     `short:"n" long:"count" description:"Number of keys to insert {1-10000000}"`
	Seed       uint64  `long:"seed" description:"Priority and shuffle seed; 0 seeds from the clock"`
	Order      string  `long:"order" description:"Insertion order {random, ascending, descending}"`
	Delete     float64 `long:"delete" description:"Fraction of inserted keys to delete afterwards {0-1}"`
	DebugLevel string  `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// validOrder returns whether or not order names a supported insertion order.
func validOrder(order string) bool {
	switch order {
	case orderRandom, orderAscending, orderDescending:
		return true
	}
	return false
}

// loadConfig initializes and parses the config using the passed command line
// arguments.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Count:      defaultCount,
		Order:      defaultOrder,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	funcName := "loadConfig"
	fail := func(format string, a ...interface{}) (*config, []string, error) {
		err := fmt.Errorf("%s: "+format, append([]interface{}{funcName}, a...)...)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.Count < minCount || cfg.Count > maxCount {
		return fail("the specified key count is out of range -- parsed [%v]",
			cfg.Count)
	}

	if !validOrder(cfg.Order) {
		return fail("the specified insertion order [%v] is invalid -- "+
			"supported orders [%s %s %s]", cfg.Order, orderRandom,
			orderAscending, orderDescending)
	}

	if cfg.Delete < 0 || cfg.Delete > 1 {
		return fail("the delete fraction must be between 0 and 1 -- "+
			"parsed [%v]", cfg.Delete)
	}

	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		return fail("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
	}

	return &cfg, remainingArgs, nil
}
