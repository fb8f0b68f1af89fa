package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
)

// treeCommand creates the tree command for printing the spatial
// hierarchy.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the spatial hierarchy of a model",
		Long: `Print the spatial hierarchy of an IFC model.

The hierarchy starts at each IfcProject and follows decomposition
(IsDecomposedBy) and containment (ContainsElements) relations in
declared file order. The default output is an indented console tree;
--format selects json, Graphviz dot, or rendered svg/png instead.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runTree(cmd.Context(), args[0], formats, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, path string, formats []string, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Walking %s...", path))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:    path,
		Formats: formats,
		Refresh: refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Hierarchy walk failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formats,
		input:     path,
		output:    output,
	}); err != nil {
		return err
	}

	if !(len(formats) == 1 && output == "" && consoleFormat(formats[0])) {
		printStats(result.Stats.EntityCount, result.Stats.NodeCount, result.CacheInfo.RenderHit)
	}
	return nil
}
