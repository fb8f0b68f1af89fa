// Package pipeline provides the load → tree → render pipeline shared by the
// CLI and the HTTP server.
//
// The pipeline consists of three stages:
//
//  1. Load: read and parse the STEP model file
//  2. Tree: build the spatial hierarchy
//  3. Render: produce artifacts (console text, JSON, DOT, SVG, PNG, takeoff
//     tables, scene descriptions)
//
// Each stage is cached under content-derived keys, so repeated runs over an
// unchanged model skip straight to the cached artifacts.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "house.ifc",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/takeoff"
)

// Format constants for tree artifacts.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Artifact names for the optional derived outputs.
const (
	ArtifactTakeoff = "takeoff"
	ArtifactScene   = "scene"
)

// ValidFormats is the set of supported tree artifact formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: text, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Path is the model file to load.
	Path string `json:"path"`

	// Refresh bypasses cached stages and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Formats are the tree artifacts to render. Defaults to ["text"].
	Formats []string `json:"formats,omitempty"`

	// Takeoff adds a "takeoff" artifact with the table as JSON.
	Takeoff        bool     `json:"takeoff,omitempty"`
	TakeoffClass   string   `json:"takeoff_class,omitempty"`
	TakeoffColumns []string `json:"takeoff_columns,omitempty"`

	// Scene adds a "scene" artifact with the scene description as JSON.
	Scene bool `json:"scene,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateModelPath(o.Path); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Takeoff {
		topts := o.takeoffOptions()
		if err := topts.ValidateAndSetDefaults(); err != nil {
			return err
		}
		o.TakeoffClass = topts.Class
		o.TakeoffColumns = topts.Columns
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// takeoffOptions builds the takeoff configuration for this run.
func (o *Options) takeoffOptions() takeoff.Options {
	return takeoff.Options{Class: o.TakeoffClass, Columns: o.TakeoffColumns}
}

// artifactKeyOpts returns cache key options for one artifact.
func (o *Options) artifactKeyOpts(name string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: name}
	if name == ArtifactTakeoff {
		opts.Class = o.TakeoffClass
		opts.Columns = o.TakeoffColumns
	}
	return opts
}

// artifactNames lists every artifact this run should produce.
func (o *Options) artifactNames() []string {
	names := append([]string(nil), o.Formats...)
	if o.Takeoff {
		names = append(names, ArtifactTakeoff)
	}
	if o.Scene {
		names = append(names, ArtifactScene)
	}
	return names
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the parsed model.
	Model *ifc.Model

	// ModelHash is the content hash of the source file.
	ModelHash string

	// Tree is the built hierarchy.
	Tree *hierarchy.Tree

	// Artifacts contains rendered outputs keyed by artifact name.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntityCount int
	NodeCount   int
	LoadTime    time.Duration
	TreeTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // model came from the cached canonical encoding
	TreeHit   bool // tree JSON came from cache
	RenderHit bool // all artifacts came from cache
}
