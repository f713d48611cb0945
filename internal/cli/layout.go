package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abstractlayout/laf/internal/obslog"
	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/laf"
	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/parser"
	"github.com/abstractlayout/laf/pkg/snapshot"
)

const defaultSnapshotTTL = 10 * time.Minute

// layoutCommand creates the layout command for computing element/container
// positions from a parsed diagram.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output          string
		configPath      string
		visualizePhases bool
		snapshotDir     string
		useTUI          bool
	)

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Run the layout pipeline over a diagram file",
		Long: `Run the layout pipeline over a diagram file.

The layout command takes a diagram file (JSON or TOML, by extension) and
computes element and container positions that minimise edge crossings. The
output is a layout.json file carrying the same shape, with every element's
pixel position, size, and the final canvas dimensions filled in.

Pass --visualize-phases to additionally record a snapshot of the Layout
after every pipeline phase (see the 'serve' command to inspect them), or
--tui for a live per-phase progress view instead of a one-line spinner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, configPath, visualizePhases, snapshotDir, useTUI)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file overriding pipeline constants")
	cmd.Flags().BoolVar(&visualizePhases, "visualize-phases", false, "record a snapshot after every phase")
	cmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "directory for phase snapshots (default: XDG cache dir)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "show a live per-phase progress view")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, output, configPath string, visualizePhases bool, snapshotDir string, useTUI bool) error {
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
	cfg.VisualizePhases = visualizePhases || cfg.VisualizePhases

	var sink laf.Sink
	runID := laf.NewRunID()
	if cfg.VisualizePhases {
		dir := snapshotDir
		if dir == "" {
			dir, err = appCacheDir()
			if err != nil {
				return fmt.Errorf("resolve snapshot directory: %w", err)
			}
		}
		store, err := snapshot.NewFileStore(dir)
		if err != nil {
			return fmt.Errorf("open snapshot store: %w", err)
		}
		defer store.Close()
		sink = snapshot.NewSink(ctx, store, runID, defaultSnapshotTTL)
		logger.Infof("Recording phase snapshots under run %s", runID)
	}

	progress := obslog.NewPhaseProgress(logger, runID)
	var report *laf.Report
	if useTUI {
		report, err = runWithTUI(func(tuiSink laf.Sink) (*laf.Report, error) {
			return laf.Run(l, cfg, fanSink{sink, tuiSink, progress})
		})
	} else {
		spinner := newSpinnerWithContext(ctx, "Starting layout...")
		spinner.Start()
		report, err = laf.Run(l, cfg, fanSink{sink, spinner, progress})
		if err != nil {
			spinner.StopWithError("Layout failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	for _, w := range report.Warnings {
		logger.Warn(w)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := writeLayout(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Elements), len(l.Connections))
	printKeyValue("Crossings", fmt.Sprintf("%d", report.Crossings))
	printNewline()
	printNextStep("Render", "laf render "+outputPath)

	return nil
}

// readLayout parses input as TOML when its extension is .toml, and as JSON
// otherwise — the parser has no format detection of its own, only
// ParseJSON and ParseTOML, so the CLI boundary decides which to call.
func readLayout(input string) (*model.Layout, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(input), ".toml") {
		return parser.ParseTOML(data)
	}
	return parser.ParseJSON(data)
}

// positionedDoc is the layout command's output shape: parser.Document
// deliberately excludes computed pixel fields (it's the input shape), so
// the CLI's own positioned-element mirror carries them instead.
type positionedDoc struct {
	Canvas      model.Canvas           `json:"canvas"`
	Elements    []positionedElement    `json:"elements"`
	Connections []parser.ConnectionDoc `json:"connections,omitempty"`
}

type positionedElement struct {
	parser.ElementDoc
	X, Y, Width, Height float64 `json:",omitempty"`
}

func writeLayout(l *model.Layout, path string) error {
	doc := parser.ToDocument(l)
	out := positionedDoc{Canvas: l.Canvas, Connections: doc.Connections}
	for i, id := range l.ElementOrder {
		el := l.Elements[id]
		out.Elements = append(out.Elements, positionedElement{
			ElementDoc: doc.Elements[i],
			X:          el.X, Y: el.Y, Width: el.Width, Height: el.Height,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// appCacheDir returns this application's cache directory using the XDG
// standard (~/.cache/laf/), used as the default home for recorded phase
// snapshots when --snapshot-dir is not given.
func appCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "laf"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "laf"), nil
}
