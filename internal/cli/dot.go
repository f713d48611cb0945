package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abstractlayout/laf/internal/obslog"
	"github.com/abstractlayout/laf/pkg/dotexport"
	"github.com/abstractlayout/laf/pkg/laf/structure"
)

// dotCommand creates the dot command for exporting a diagram's reduced
// structure graph (primary elements and virtual containers, post Phase 1)
// as Graphviz DOT, optionally rendered straight to SVG via goccy/go-graphviz.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output string
		asSVG  bool
	)

	cmd := &cobra.Command{
		Use:   "dot [diagram.json]",
		Short: "Export a diagram's reduced structure graph as Graphviz DOT",
		Long: `Export a diagram's reduced structure graph as Graphviz DOT.

This runs only Phase 1 (structure analysis) and emits the resulting reduced
graph — primary elements with virtual containers collapsed to single
vertices — as a DOT document, useful for inspecting detected virtual
containers independent of the full layout. Pass --svg to render it with
Graphviz instead of emitting raw DOT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), args[0], output, asSVG)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.dot or .svg)")
	cmd.Flags().BoolVar(&asSVG, "svg", false, "render with Graphviz instead of emitting raw DOT")

	return cmd
}

func (c *CLI) runDot(ctx context.Context, input, output string, asSVG bool) error {
	logger := obslog.FromContext(ctx)

	l, err := readLayout(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	info, err := structure.Analyze(l)
	if err != nil {
		return fmt.Errorf("analyze structure: %w", err)
	}
	logger.Infof("Reduced graph: %d virtual containers", len(info.VirtualContainers))

	dot := dotexport.ToDOT(info)

	ext := ".dot"
	data := []byte(dot)
	if asSVG {
		ext = ".svg"
		data, err = dotexport.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render graphviz svg: %w", err)
		}
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("DOT export complete")
	printFile(outputPath)

	return nil
}
