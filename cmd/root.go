package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	sim "github.com/cache-sim/cache-sim/sim"
	"github.com/cache-sim/cache-sim/sim/recording"
	"github.com/cache-sim/cache-sim/sim/trace"
)

var (
	// CLI flags
	configPath string // Cache geometry configuration file
	tracePath  string // Trace file (empty = stdin)
	logLevel   string // Log verbosity level
	dbPath     string // SQLite database for access recording (empty = disabled)
	recordDB   bool   // Whether to record accesses into SQLite
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cache-sim",
	Short: "Trace-driven simulator for set-associative data caches",
}

// runCmd replays a memory access trace against the configured cache
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cache simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		config, err := sim.LoadCacheConfig(configPath)
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		geometry, err := config.Validate()
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}

		logrus.Infof("Starting simulation with %d sets, %d ways, %d-byte lines",
			geometry.NumSets, geometry.Associativity, geometry.LineSize)

		var input io.Reader = os.Stdin
		if tracePath != "" {
			f, err := os.Open(tracePath)
			if err != nil {
				logrus.Fatalf("Error: cannot open trace file: %v", err)
			}
			defer f.Close()
			input = f
		}

		var recorder *recording.Recorder
		if recordDB || dbPath != "" {
			recorder, err = recording.NewRecorder(dbPath)
			if err != nil {
				logrus.Fatalf("Error: %v", err)
			}
			defer recorder.Close()
		}

		cache := sim.NewCache(geometry)
		st := trace.NewSimulationTrace()
		reporter := sim.NewReporter(os.Stdout)

		reporter.PrintConfig(geometry)
		reporter.PrintHeader()

		seq := 0
		err = sim.Replay(cache, input, func(o sim.Outcome) {
			seq++
			reporter.PrintOutcome(o)
			st.RecordAccess(trace.AccessRecord{
				Kind:    string(byte(o.Kind)),
				Address: o.Address,
				Tag:     o.Tag,
				Index:   o.Index,
				Offset:  o.Offset,
				Hit:     o.Hit,
				MemRefs: o.MemRefs,
			})
			if recorder != nil {
				if err := recorder.InsertAccess(recording.AccessEntry{
					Seq:        seq,
					Kind:       string(byte(o.Kind)),
					Address:    o.Address,
					Tag:        o.Tag,
					SetIndex:   o.Index,
					ByteOffset: o.Offset,
					Hit:        o.Hit,
					MemRefs:    o.MemRefs,
				}); err != nil {
					logrus.Warnf("Recording access %d failed: %v", seq, err)
				}
			}
		})
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}

		stats := cache.Stats()
		reporter.PrintSummary(stats)

		// The per-access records must add back up to the model's counters.
		summary := trace.Summarize(st)
		if summary.Hits != stats.Hits || summary.Misses != stats.Misses ||
			summary.MemReads != stats.MemReads || summary.MemWrites != stats.MemWrites {
			logrus.Warnf("[THIS SHOULD NEVER HAPPEN] trace summary %+v disagrees with cache stats %+v",
				summary, stats)
		}
		logrus.Infof("Simulation complete: %d accesses across %d sets",
			summary.TotalAccesses, summary.SetsTouched)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "trace.config", "Cache configuration file (classic or YAML format)")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Trace file path (default: read from stdin)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path for access recording (implies --record)")
	runCmd.Flags().BoolVar(&recordDB, "record", false, "Record per-access rows into a SQLite database")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
