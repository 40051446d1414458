// Command linearhash-bench drives a linearhash.Table through a
// deterministic synthetic workload and writes a JSON report of the run.
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	loaded, err := LoadConfig(cfg.ConfigPath, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "linearhash-bench: capacity=%d strategy=%s operations=%d seed=%d\n",
		loaded.Capacity, loaded.Strategy, loaded.Operations, loaded.Seed)

	report, err := RunWorkload(loaded)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "linearhash-bench: finished in %s, final size=%d capacity=%d tombstones=%d\n",
		report.Elapsed, report.FinalSize, report.FinalCapacity, report.Tombstones)

	if err := WriteReport(loaded.OutPath, report); err != nil {
		fmt.Fprintln(os.Stderr, "error writing report:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "linearhash-bench: wrote report to %s\n", loaded.OutPath)
}
