// Command reltrack reads the five-command line protocol from stdin,
// drives an in-memory relation graph, and writes report output to stdout.
//
// Flag/config wiring follows cmd/bd/main.go's cobra root-command shape
// (global package-level vars set in init(), setup done at the top of the
// root command's RunE). The stdin loop itself, with its enlarged-buffer
// bufio.Scanner grounded on cmd/bd/jsonl_reader.go's loadIssuesFromJSONL,
// lives in internal/runner.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reltrack/reltrack/internal/config"
	"github.com/reltrack/reltrack/internal/debug"
	"github.com/reltrack/reltrack/internal/graph"
	"github.com/reltrack/reltrack/internal/metrics"
	"github.com/reltrack/reltrack/internal/runner"
)

var (
	configPath  string
	debugFlag   bool
	metricsFlag bool
	statsFlag   bool
)

var (
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	})
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	})
)

var rootCmd = &cobra.Command{
	Use:   "reltrack",
	Short: "reltrack - in-memory relation tracker",
	Long:  `reltrack reads addent/delent/addrel/delrel/report/end commands from stdin and maintains per-type top destination indexes.`,
	RunE:  run,
}

// v is the same viper-singleton-for-flag/env-binding pattern the teacher's
// config.Initialize() sets up (internal/config/config.go in the BeadsLog
// fork): SetEnvPrefix + AutomaticEnv lets a flag's value be overridden by
// an environment variable of the same name without each flag needing its
// own os.Getenv call.
var v = viper.New()

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to reltrack.yaml or reltrack.toml")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable verbose diagnostic logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&metricsFlag, "metrics", false, "Export OpenTelemetry metrics to stderr on exit")
	rootCmd.PersistentFlags().BoolVar(&statsFlag, "stats", false, "Print a colorized summary to stderr on exit")

	v.SetEnvPrefix("RELTRACK")
	v.AutomaticEnv()
	for _, name := range []string{"config", "debug", "metrics", "stats"} {
		if err := v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "reltrack: binding flag %q: %v\n", name, err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	if v.GetBool("debug") {
		debug.SetVerbose(true)
	}

	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return fmt.Errorf("reltrack: loading config: %w", err)
	}
	if v.GetBool("metrics") {
		cfg.Metrics = true
	}

	g := graph.New(graph.Config{
		InitialEntityCapacity: cfg.InitialEntityCapacity,
		InitialTypeCapacity:   cfg.InitialTypeCapacity,
	})

	var recorder *metrics.Recorder
	if cfg.Metrics {
		recorder, err = metrics.New(g)
		if err != nil {
			return fmt.Errorf("reltrack: starting metrics: %w", err)
		}
	}
	ctx := context.Background()
	defer func() {
		if err := recorder.Shutdown(ctx); err != nil {
			debug.Logf("metrics shutdown: %v\n", err)
		}
	}()

	if err := runner.Run(ctx, os.Stdin, os.Stdout, runner.Options{Graph: g, Recorder: recorder}); err != nil {
		return fmt.Errorf("reltrack: %w", err)
	}

	printStats(g)
	return nil
}

func printStats(g *graph.Graph) {
	if !v.GetBool("stats") {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s  %s %s  %s %s\n",
		statLabelStyle.Render("entities:"), statValueStyle.Render(fmt.Sprint(g.EntityCount())),
		statLabelStyle.Render("types:"), statValueStyle.Render(fmt.Sprint(g.TypeCount())),
		statLabelStyle.Render("recomputes:"), statValueStyle.Render(fmt.Sprint(g.Stats.Recomputes)))
}
