package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lrucache/internal/cache"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "lrucache",
		Short: "Walk a fixed-capacity LRU cache through its eviction behavior",
		Long: `lrucache runs a small scripted demo against the in-process LRU cache:
fill it to capacity, touch an entry to refresh its recency, then overflow it
and watch the least-recently-used entries get evicted.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(capacity)
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 2, "maximum number of live entries")
	return cmd
}

func runDemo(capacity int) error {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	c, err := cache.NewWithEvict(capacity, func(key, value int) {
		log.Info("evicted", "key", key, "value", value)
	})
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	log.Info("demo starting", "capacity", capacity)

	// Fill to capacity.
	c.Put(1, 1)
	c.Put(2, 2)
	log.Info("seeded", "keys_mru_to_lru", c.Keys())

	// Touch key 1 so key 2 becomes least recently used.
	if v, ok := c.Get(1); ok {
		log.Info("get hit refreshes recency", "key", 1, "value", v, "keys_mru_to_lru", c.Keys())
	}

	// Overflow: inserting key 3 evicts the least-recently-used key 2.
	c.Put(3, 3)
	if _, ok := c.Get(2); !ok {
		log.Info("get miss", "key", 2)
	}
	log.Info("after overflow", "keys_mru_to_lru", c.Keys(), "len", c.Len())

	// Overflow again: key 1 is now oldest and gets dropped.
	c.Put(4, 4)
	for _, key := range []int{1, 3, 4} {
		if v, ok := c.Get(key); ok {
			log.Info("get hit", "key", key, "value", v)
		} else {
			log.Info("get miss", "key", key)
		}
	}
	log.Info("demo done", "keys_mru_to_lru", c.Keys(), "len", c.Len())

	return nil
}
