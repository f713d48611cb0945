package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abstractlayout/laf/internal/obslog"
	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/laf"
	svgrender "github.com/abstractlayout/laf/pkg/render/svg"
)

// renderCommand creates the render command: a shortcut from a diagram file
// straight to a rendered SVG, running the pipeline internally rather than
// requiring a separate 'layout' step first.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output      string
		configPath  string
		showEdges   bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "render [diagram.json]",
		Short: "Lay out and render a diagram to SVG",
		Long: `Lay out and render a diagram to SVG in one step.

The render command parses a diagram file, runs the layout pipeline, routes
connections, and writes a standalone SVG document. Use 'layout' instead if
you need the intermediate positioned layout (e.g. to feed a different
renderer or to inspect per-phase snapshots).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, configPath, showEdges, interactive)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file overriding pipeline constants")
	cmd.Flags().BoolVar(&showEdges, "edges", true, "draw routed connections")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "embed hover-highlight CSS/JS")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output, configPath string, showEdges, interactive bool) error {
	logger := obslog.FromContext(ctx)

	l, err := readLayout(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}
	logger.Infof("Loaded diagram: %d elements, %d connections", len(l.Elements), len(l.Connections))

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	spinner := newSpinnerWithContext(ctx, "Starting layout...")
	spinner.Start()
	progress := obslog.NewPhaseProgress(logger, laf.NewRunID())
	report, err := laf.Run(l, cfg, fanSink{spinner, progress})
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("run pipeline: %w", err)
	}
	spinner.Stop()
	for _, w := range report.Warnings {
		logger.Warn(w)
	}

	var opts []svgrender.Option
	if showEdges {
		opts = append(opts, svgrender.WithEdges())
	}
	if interactive {
		opts = append(opts, svgrender.WithInteractive())
	}
	data := svgrender.Render(l, opts...)

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printStats(len(l.Elements), len(l.Connections))

	return nil
}
