package pipeline

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/render"
	"github.com/ifcwalk/ifcwalk/pkg/scene"
	"github.com/ifcwalk/ifcwalk/pkg/takeoff"
)

// renderArtifacts builds every requested artifact. SVG and PNG share one
// DOT conversion.
func renderArtifacts(ctx context.Context, m *ifc.Model, tree *hierarchy.Tree, treeJSON []byte, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	var dot string
	needDOT := false
	for _, f := range opts.Formats {
		if f == FormatDOT || f == FormatSVG || f == FormatPNG {
			needDOT = true
			break
		}
	}
	if needDOT {
		dot = render.ToDOT(tree)
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatText:
			var buf bytes.Buffer
			if err := render.WriteTree(&buf, tree); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to render tree text")
			}
			artifacts[FormatText] = buf.Bytes()
		case FormatJSON:
			artifacts[FormatJSON] = treeJSON
		case FormatDOT:
			artifacts[FormatDOT] = []byte(dot)
		case FormatSVG:
			svg, err := render.RenderSVG(ctx, dot)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to render SVG")
			}
			artifacts[FormatSVG] = svg
		case FormatPNG:
			png, err := render.RenderPNG(ctx, dot)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to render PNG")
			}
			artifacts[FormatPNG] = png
		}
	}

	if opts.Takeoff {
		table, err := takeoff.Run(m, opts.takeoffOptions())
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(table)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize takeoff table")
		}
		artifacts[ArtifactTakeoff] = data
	}

	if opts.Scene {
		sc, err := scene.Build(m)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(sc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize scene")
		}
		artifacts[ArtifactScene] = data
	}

	return artifacts, nil
}
