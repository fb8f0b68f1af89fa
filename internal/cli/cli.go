// Package cli implements the ifcwalk command-line interface.
//
// One command per sink: tree, show, header, schema, takeoff, edit,
// view, scene and serve, plus cache management and shell completion.
// Every model-reading command takes the file path as its first
// positional argument. All commands support --verbose for debug
// logging; loggers travel through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/buildinfo"
	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
)

// appName is used for the cache and config directories and in help text.
const appName = "ifcwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ifcwalk browses and edits IFC building models",
		Long:         `ifcwalk opens IFC (ISO 10303-21) building models and walks their spatial hierarchy: print it as a tree, inspect and edit single entities, extract quantity takeoffs, export scene descriptions, or serve everything over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.headerCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.takeoffCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.sceneCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner backed by the file cache, or the
// null cache when caching is disabled or the cache dir is unavailable.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using the XDG convention
// (~/.cache/ifcwalk unless XDG_CACHE_HOME overrides it).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a comma-separated --format value, defaulting to
// the console tree.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatText}
	}
	return strings.Split(s, ",")
}
