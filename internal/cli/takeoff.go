package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/settings"
	"github.com/ifcwalk/ifcwalk/pkg/takeoff"
)

// takeoffCommand creates the takeoff command for extracting quantity
// tables.
func (c *CLI) takeoffCommand() *cobra.Command {
	var (
		class      string
		columnsStr string
		csvPath    string
		mongoURI   string
		mongoDB    string
		mongoColl  string
	)

	cmd := &cobra.Command{
		Use:   "takeoff <file>",
		Short: "Extract a quantity takeoff table",
		Long: `Extract a quantity takeoff table from a model.

Rows are all instances of the root class (default IfcElement,
subtypes included) in declared file order. Columns resolve per row
against direct attributes, then property values, then quantity
values; cells a class lacks stay empty.

The table is written as semicolon-separated CSV to stdout, to a file
with --csv, or into MongoDB with --mongo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTakeoff(cmd.Context(), args[0], takeoffParams{
				class:     class,
				columns:   columnsStr,
				csvPath:   csvPath,
				mongoURI:  mongoURI,
				mongoDB:   mongoDB,
				mongoColl: mongoColl,
			})
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "root class for rows (default from settings, else IfcElement)")
	cmd.Flags().StringVar(&columnsStr, "columns", "", "comma-separated column list (default from settings)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this file instead of stdout")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "export rows to this MongoDB connection string")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", takeoff.DefaultDatabase, "MongoDB database name")
	cmd.Flags().StringVar(&mongoColl, "mongo-collection", takeoff.DefaultCollection, "MongoDB collection name")

	return cmd
}

type takeoffParams struct {
	class     string
	columns   string
	csvPath   string
	mongoURI  string
	mongoDB   string
	mongoColl string
}

func (c *CLI) runTakeoff(ctx context.Context, path string, p takeoffParams) error {
	opts := takeoff.Options{Class: p.class}
	if p.columns != "" {
		opts.Columns = strings.Split(p.columns, ",")
	}
	applyTakeoffSettings(&opts, c.loadSettings())

	m, err := ifc.Open(path)
	if err != nil {
		return err
	}

	table, err := takeoff.Run(m, opts)
	if err != nil {
		return err
	}

	if p.csvPath == "" && p.mongoURI == "" {
		return takeoff.WriteCSV(os.Stdout, table)
	}

	if p.csvPath != "" {
		if err := takeoff.SaveCSV(p.csvPath, table); err != nil {
			return err
		}
		printSuccess("Wrote %d rows (%s)", len(table.Rows), table.Class)
		printFile(p.csvPath)
	}

	if p.mongoURI != "" {
		spinner := newSpinnerWithContext(ctx, "Exporting to MongoDB...")
		spinner.Start()
		err := takeoff.Export(ctx, table, path, takeoff.MongoOptions{
			URI:        p.mongoURI,
			Database:   p.mongoDB,
			Collection: p.mongoColl,
		})
		if err != nil {
			spinner.StopWithError("MongoDB export failed")
			return err
		}
		spinner.Stop()
		printSuccess("Exported %d rows to %s.%s", len(table.Rows), p.mongoDB, p.mongoColl)
	}
	return nil
}

// applyTakeoffSettings fills class and columns from the settings file
// when the flags left them empty. Flags win over settings, settings
// over built-in defaults.
func applyTakeoffSettings(opts *takeoff.Options, cfg *settings.Settings) {
	if cfg == nil {
		return
	}
	if opts.Class == "" {
		opts.Class = cfg.Takeoff.Class
	}
	if len(opts.Columns) == 0 {
		opts.Columns = cfg.Takeoff.Columns
	}
}

// loadSettings reads the settings file, warning instead of failing on
// a corrupt file. The file itself is never rewritten on error.
func (c *CLI) loadSettings() *settings.Settings {
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.Default()
	}
	cfg, err := settings.Load(path)
	if err != nil {
		printWarning("Ignoring settings: %s", err)
		return settings.Default()
	}
	return cfg
}

// saveSettings persists cfg, logging failures without aborting the
// command that triggered the save.
func (c *CLI) saveSettings(cfg *settings.Settings) {
	path, err := settings.DefaultPath()
	if err != nil {
		return
	}
	if err := cfg.Save(path); err != nil {
		c.Logger.Warnf("save settings: %v", err)
	}
}
