// treapstat builds a treap from a configurable key sequence, checks its
// invariants and reports how deep it grew.
package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"

	"github.com/metailurini/treap"
)

var log = btclog.Disabled

// report is what a single treapstat run measured.
type report struct {
	Inserted int
	Deleted  int
	Size     int
	Depth    int
	Ratio    float64
	Stats    treap.Stats
}

// keySequence returns the keys 0..n-1 in the configured insertion order.
func keySequence(order string, n int, r *rand.Rand) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	switch order {
	case orderDescending:
		for i := range keys {
			keys[i] = n - 1 - i
		}
	case orderRandom:
		r.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	}
	return keys
}

// run performs the build, delete and verify passes described by cfg.
func run(cfg *config) (*report, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("using seed %d", seed)

	t := treap.New[int, int](treap.WithSeed(seed))
	r := rand.New(rand.NewPCG(seed, seed>>1|1))

	keys := keySequence(cfg.Order, cfg.Count, r)
	for _, k := range keys {
		t.Set(k, k)
	}
	log.Infof("inserted %d keys in %s order", len(keys), cfg.Order)

	deleted := int(cfg.Delete * float64(len(keys)))
	victims := r.Perm(len(keys))[:deleted]
	for _, i := range victims {
		if _, err := t.Delete(keys[i]); err != nil {
			return nil, err
		}
	}
	if deleted > 0 {
		log.Infof("deleted %d keys", deleted)
	}

	if err := t.Verify(); err != nil {
		return nil, err
	}

	rep := &report{
		Inserted: len(keys),
		Deleted:  deleted,
		Size:     t.Len(),
		Depth:    t.Depth(),
		Stats:    t.Stats(),
	}
	if rep.Size > 1 {
		rep.Ratio = float64(rep.Depth) / math.Log2(float64(rep.Size))
	}
	return rep, nil
}

func printReport(w io.Writer, rep *report) {
	fmt.Fprintf(w, "size:        %d\n", rep.Size)
	fmt.Fprintf(w, "depth:       %d\n", rep.Depth)
	fmt.Fprintf(w, "depth/log2n: %.3f\n", rep.Ratio)
	s := rep.Stats
	fmt.Fprintf(w, "inserts=%d updates=%d deletes=%d misses=%d draws=%d "+
		"splits=%d merges=%d\n", s.Inserts, s.Updates, s.Deletes, s.Misses,
		s.PriorityDraws, s.Splits, s.Merges)
}

// setupLogging routes the command's and the library's loggers through a
// single backend writing to w.
func setupLogging(w io.Writer, debugLevel string) {
	backend := btclog.NewBackend(w)
	log = backend.Logger("STAT")
	treapLog := backend.Logger("TRAP")
	level, _ := btclog.LevelFromString(debugLevel)
	log.SetLevel(level)
	treapLog.SetLevel(level)
	treap.UseLogger(treapLog)
}

func realMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	setupLogging(os.Stdout, cfg.DebugLevel)
	defer treap.DisableLog()

	rep, err := run(cfg)
	if err != nil {
		log.Errorf("treap check failed: %v", err)
		return err
	}
	log.Debugf("report: %s", spew.Sdump(rep))

	printReport(os.Stdout, rep)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
