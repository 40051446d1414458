package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"
)

// Config holds the fully resolved workload configuration: defaults,
// overridden by an optional HuJSON config file, overridden in turn by
// explicit CLI flags, mirroring the pack's flags-over-file-over-defaults
// precedence.
type Config struct {
	Capacity     int    `json:"capacity"`
	Strategy     string `json:"strategy"`      // "rehash" or "tombstone"
	Operations   int    `json:"operations"`
	Seed         int64  `json:"seed"`
	InsertWeight int    `json:"insert_weight"` //nolint:tagliatelle // snake_case for config file
	EraseWeight  int    `json:"erase_weight"`  //nolint:tagliatelle // snake_case for config file
	FindWeight   int    `json:"find_weight"`   //nolint:tagliatelle // snake_case for config file
	IndexWeight  int    `json:"index_weight"`  //nolint:tagliatelle // snake_case for config file
	KeySpace     int    `json:"key_space"`     //nolint:tagliatelle // snake_case for config file
	OutPath      string `json:"-"`
	ConfigPath   string `json:"-"`
}

// DefaultConfig returns the baseline workload configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:     32,
		Strategy:     "rehash",
		Operations:   100_000,
		Seed:         1,
		InsertWeight: 5,
		EraseWeight:  2,
		FindWeight:   2,
		IndexWeight:  1,
		KeySpace:     4096,
		OutPath:      "linearhash-bench-report.json",
	}
}

// flagOverrides tracks which CLI flags were explicitly set, so that an
// unset flag does not clobber a value loaded from the config file.
type flagOverrides struct {
	capacity     bool
	strategy     bool
	operations   bool
	seed         bool
	out          bool
	insertWeight bool
	eraseWeight  bool
	findWeight   bool
	indexWeight  bool
	keySpace     bool
}

// cliConfig is the result of parsing command-line flags: the requested
// values plus which of them were explicitly provided.
type cliConfig struct {
	Config
	set flagOverrides
}

// parseFlags parses args with pflag, following the same flag-naming
// idiom as the pack's ls.go (long flags, no single-letter aliases for
// workload knobs).
func parseFlags(args []string) (cliConfig, error) {
	fs := pflag.NewFlagSet("linearhash-bench", pflag.ContinueOnError)

	defaults := DefaultConfig()

	capacity := fs.Int("capacity", defaults.Capacity, "initial table capacity (rounded up to a power of two)")
	strategy := fs.String("strategy", defaults.Strategy, `deletion strategy: "rehash" or "tombstone"`)
	operations := fs.Int("operations", defaults.Operations, "number of synthetic operations to run")
	seed := fs.Int64("seed", defaults.Seed, "seed for the deterministic workload generator")
	out := fs.String("out", defaults.OutPath, "path to write the JSON report to")
	configPath := fs.String("config", "", "optional HuJSON workload config file")
	insertWeight := fs.Int("insert-weight", defaults.InsertWeight, "relative weight of insert operations")
	eraseWeight := fs.Int("erase-weight", defaults.EraseWeight, "relative weight of erase operations")
	findWeight := fs.Int("find-weight", defaults.FindWeight, "relative weight of find operations")
	indexWeight := fs.Int("index-weight", defaults.IndexWeight, "relative weight of index-or-insert operations")
	keySpace := fs.Int("key-space", defaults.KeySpace, "number of distinct keys the workload draws from")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := defaults
	cfg.Capacity = *capacity
	cfg.Strategy = *strategy
	cfg.Operations = *operations
	cfg.Seed = *seed
	cfg.OutPath = *out
	cfg.ConfigPath = *configPath
	cfg.InsertWeight = *insertWeight
	cfg.EraseWeight = *eraseWeight
	cfg.FindWeight = *findWeight
	cfg.IndexWeight = *indexWeight
	cfg.KeySpace = *keySpace

	return cliConfig{
		Config: cfg,
		set: flagOverrides{
			capacity:     fs.Changed("capacity"),
			strategy:     fs.Changed("strategy"),
			operations:   fs.Changed("operations"),
			seed:         fs.Changed("seed"),
			out:          fs.Changed("out"),
			insertWeight: fs.Changed("insert-weight"),
			eraseWeight:  fs.Changed("erase-weight"),
			findWeight:   fs.Changed("find-weight"),
			indexWeight:  fs.Changed("index-weight"),
			keySpace:     fs.Changed("key-space"),
		},
	}, nil
}

// LoadConfig resolves the final Config: defaults, then an optional
// HuJSON file named by path, then any CLI flags the caller
// explicitly set. Mirrors the pack's config.go precedence order.
func LoadConfig(path string, cli cliConfig) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}

		cfg = mergeNonZero(cfg, fileCfg)
	}

	cfg = applyCLIOverrides(cfg, cli)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an explicit operator-supplied flag
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HuJSON in %s: %w", path, err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return cfg, nil
}

func mergeNonZero(base, overlay Config) Config {
	if overlay.Capacity != 0 {
		base.Capacity = overlay.Capacity
	}

	if overlay.Strategy != "" {
		base.Strategy = overlay.Strategy
	}

	if overlay.Operations != 0 {
		base.Operations = overlay.Operations
	}

	if overlay.Seed != 0 {
		base.Seed = overlay.Seed
	}

	if overlay.InsertWeight != 0 {
		base.InsertWeight = overlay.InsertWeight
	}

	if overlay.EraseWeight != 0 {
		base.EraseWeight = overlay.EraseWeight
	}

	if overlay.FindWeight != 0 {
		base.FindWeight = overlay.FindWeight
	}

	if overlay.IndexWeight != 0 {
		base.IndexWeight = overlay.IndexWeight
	}

	if overlay.KeySpace != 0 {
		base.KeySpace = overlay.KeySpace
	}

	return base
}

func applyCLIOverrides(base Config, cli cliConfig) Config {
	if cli.set.capacity {
		base.Capacity = cli.Capacity
	}

	if cli.set.strategy {
		base.Strategy = cli.Strategy
	}

	if cli.set.operations {
		base.Operations = cli.Operations
	}

	if cli.set.seed {
		base.Seed = cli.Seed
	}

	if cli.set.out {
		base.OutPath = cli.OutPath
	}

	if cli.set.insertWeight {
		base.InsertWeight = cli.InsertWeight
	}

	if cli.set.eraseWeight {
		base.EraseWeight = cli.EraseWeight
	}

	if cli.set.findWeight {
		base.FindWeight = cli.FindWeight
	}

	if cli.set.indexWeight {
		base.IndexWeight = cli.IndexWeight
	}

	if cli.set.keySpace {
		base.KeySpace = cli.KeySpace
	}

	base.ConfigPath = cli.ConfigPath

	return base
}

func validateConfig(cfg Config) error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", errInvalidConfig, cfg.Capacity)
	}

	if cfg.Strategy != "rehash" && cfg.Strategy != "tombstone" {
		return fmt.Errorf("%w: strategy must be \"rehash\" or \"tombstone\", got %q", errInvalidConfig, cfg.Strategy)
	}

	if cfg.Operations <= 0 {
		return fmt.Errorf("%w: operations must be positive, got %d", errInvalidConfig, cfg.Operations)
	}

	if cfg.KeySpace <= 0 {
		return fmt.Errorf("%w: key-space must be positive, got %d", errInvalidConfig, cfg.KeySpace)
	}

	totalWeight := cfg.InsertWeight + cfg.EraseWeight + cfg.FindWeight + cfg.IndexWeight
	if totalWeight <= 0 {
		return fmt.Errorf("%w: operation weights must sum to a positive number", errInvalidConfig)
	}

	return nil
}
