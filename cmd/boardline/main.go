// Command boardline runs the manufacturing-line simulator described by a
// YAML line document: it builds the line, steps it for a configured
// duration, and either writes a static HTML report or serves a live
// websocket view of it as it runs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"boardline/config"
	"boardline/report"
)

const defaultRunSeconds = 28800 // one 8-hour shift

var (
	configPath string
	runSeconds float64
	visualize  bool
	saveTo     string
	listenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "boardline",
	Short: "Discrete-event simulator for a fastener-picking manufacturing line",
	Long: `boardline simulates a conveyorized manufacturing line that picks
fasteners (staples, nails, screws) out of a moving board ahead of assembly,
per a declarative YAML line description.`,
	RunE: runApp,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to the line's YAML configuration (required)")
	flags.Float64VarP(&runSeconds, "time", "t", defaultRunSeconds, "simulated seconds to run")
	flags.BoolVarP(&visualize, "visualize", "v", false, "serve a live view instead of writing a static report")
	flags.StringVarP(&saveTo, "save-to", "s", "", "path to write the static HTML report (default: <config>.html)")
	flags.StringVar(&listenAddr, "addr", ":8080", "address to serve the live view on, when --visualize is set")
	_ = rootCmd.MarkFlagRequired("config")
}

func runApp(cmd *cobra.Command, args []string) error {
	doc, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	line, err := config.Build(doc)
	if err != nil {
		return fmt.Errorf("building line: %w", err)
	}

	if visualize {
		return runLive(line)
	}
	return runStatic(line)
}

func runLive(line *config.Line) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if err := line.Runtime.StepUntil(runSeconds); err != nil {
			fmt.Fprintf(os.Stderr, "simulation stopped: %v\n", err)
		}
		cancel()
	}()

	lv := report.NewLiveView(line)
	fmt.Printf("serving live view on %s\n", listenAddr)
	return lv.Run(ctx, listenAddr)
}

func runStatic(line *config.Line) error {
	if err := line.Runtime.StepUntil(runSeconds); err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	path := saveTo
	if path == "" {
		path = defaultReportPath(configPath)
	}

	r := report.Build(line)
	if err := report.SaveHTML(path, r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("wrote report to %s\n", path)
	return nil
}

func defaultReportPath(configPath string) string {
	base := filepath.Base(configPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(configPath), stem+".html")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
