package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Run executes the cache stats command.
func (c *CacheStatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Cache.Stats(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Location:   %s\n", deps.DBPath)
	fmt.Fprintf(deps.Stdout, "Entries:    %d\n", stats.Entries)
	fmt.Fprintf(deps.Stdout, "Total size: %s\n", humanize.IBytes(uint64(stats.TotalSize)))
	fmt.Fprintf(deps.Stdout, "Expired:    %d\n", stats.ExpiredCount)
	fmt.Fprintf(deps.Stdout, "TTL:        %s\n", deps.Config.Cache.TTL)
	return nil
}

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Cache.List(deps.Ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "Cache is empty.")
		return nil
	}

	now := deps.Now()
	for _, e := range entries {
		status := "fresh"
		if e.Expired(now) {
			status = "expired"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %9s  %s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			status,
			humanize.IBytes(uint64(e.Size)),
			e.Key,
			e.Version,
		)
	}
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if c.Expired {
		n, err := deps.Cache.Prune(deps.Ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Removed %d expired entries\n", n)
		return nil
	}

	n, err := deps.Cache.Clear(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Removed %d entries\n", n)
	return nil
}
