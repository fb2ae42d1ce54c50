// Command nd is the natded CLI: it runs and watches proof scripts,
// launches the interactive front-end, and exports session snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willowbrook/natded/internal/config"
	"github.com/willowbrook/natded/internal/debug"
	"github.com/willowbrook/natded/internal/engine"
	"github.com/willowbrook/natded/internal/metrics"
	"github.com/willowbrook/natded/internal/scriptexec"
	"github.com/willowbrook/natded/internal/session"
	"github.com/willowbrook/natded/internal/tui"
)

var (
	cfgFile        string
	noColor        bool
	verbose        bool
	quiet          bool
	metricsEnabled bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nd",
		Short: "natded drives a first-order natural deduction proof engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.SetVerbose(verbose)
			debug.SetQuiet(quiet)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a natded.toml/natded.yaml config file")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling regardless of terminal detection")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug tracing")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	root.PersistentFlags().BoolVar(&metricsEnabled, "metrics", false, "export OpenTelemetry step/theorem counters to stdout")

	root.AddCommand(runCmd(), watchCmd(), replCmd(), exportCmd())
	return root
}

func loadConfig() config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		debug.Logf("config: %v, falling back to defaults\n", err)
		cfg = config.Default()
	}
	if noColor {
		cfg.Color = false
	}
	return cfg
}

func colorEnabled(cfg config.Config) bool {
	return cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
}

// metricsEnabledFor resolves whether metrics should be exported: an
// explicit --metrics flag always wins, otherwise the config file's
// metrics-enabled setting applies.
func metricsEnabledFor(cmd *cobra.Command, cfg config.Config) bool {
	if cmd.Flags().Changed("metrics") {
		return metricsEnabled
	}
	return cfg.MetricsEnabled
}

func withMetrics(ctx context.Context, enabled bool) (*metrics.Recorder, func(context.Context) error) {
	if !enabled {
		return nil, func(context.Context) error { return nil }
	}
	rec, shutdown, err := metrics.Setup(ctx, 5*time.Second)
	if err != nil {
		debug.Logf("metrics setup failed: %v\n", err)
		return nil, func(context.Context) error { return nil }
	}
	return rec, shutdown
}

// runOnce executes every step of the script at path against a fresh
// Engine, optionally observed by rec, and reports the outcome.
func runOnce(ctx context.Context, path string, rec *metrics.Recorder) error {
	runID := uuid.New()
	debug.Logf("run %s: executing %s\n", runID, path)

	ex, err := scriptexec.FromFile(path)
	if err != nil {
		return err
	}

	eng := engine.New(path)
	results, execErr := ex.ExecAll(eng)
	for _, r := range results {
		for _, e := range r.Effects {
			debug.PrintlnNormal(e.String())
		}
		if rec != nil {
			rec.Observe(ctx, r.Command, r.Effects, nil)
		}
	}
	if execErr != nil {
		reported := execErr
		if se, ok := execErr.(*scriptexec.StepError); ok {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, se.Step.StartLine+1, se.Step.StartCol+1, se.Err)
			reported = se.Err
		}
		if rec != nil {
			rec.Observe(ctx, nil, nil, reported)
		}
		return execErr
	}

	debug.PrintlnNormal("OK:", len(results), "step(s) executed,", path)
	return nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "execute every step of a proof script once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()
			rec, shutdown := withMetrics(ctx, metricsEnabledFor(cmd, cfg))
			defer shutdown(ctx)
			return runOnce(ctx, args[0], rec)
		},
	}
}

func watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <script>",
		Short: "re-run a proof script every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()
			rec, shutdown := withMetrics(ctx, metricsEnabledFor(cmd, cfg))
			defer shutdown(ctx)

			if !cmd.Flags().Changed("debounce") {
				debounce = cfg.WatchDebounce
			}

			path := args[0]
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			if err := watcher.Add(path); err != nil {
				return err
			}

			// First run happens immediately; failures are reported but
			// don't stop watching.
			_ = runOnce(ctx, path, rec)

			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = debounce
			bo.MaxInterval = 5 * time.Second

			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					time.Sleep(bo.NextBackOff())
					if err := runOnce(ctx, path, rec); err != nil {
						debug.Logf("watch: %v\n", err)
					} else {
						bo.Reset()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					debug.Logf("watch: fsnotify error: %v\n", err)
				}
			}
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "delay after a change before re-running")
	return cmd
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive proof session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			eng := engine.New("interactive")
			return tui.New(eng, colorEnabled(cfg)).Run()
		},
	}
}

func exportCmd() *cobra.Command {
	var format string
	var out string
	cmd := &cobra.Command{
		Use:   "export <script>",
		Short: "run a script and export the resulting context as TOML or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			eng := engine.New(args[0])
			ex, err := scriptexec.FromFile(args[0])
			if err != nil {
				return err
			}
			if _, err := ex.ExecAll(eng); err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			snap := session.Of(eng)
			snap.Author = cfg.Author
			switch format {
			case "yaml":
				return snap.WriteYAML(w)
			default:
				return snap.WriteTOML(w)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	cmd.Flags().StringVar(&out, "out", "", "output file path (defaults to stdout)")
	return cmd
}
