package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method so os.Stdout
// can be used where a WriteCloser is expected.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is
// empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// consoleFormat reports whether a format is plain text that can go to
// stdout.
func consoleFormat(f string) bool {
	switch f {
	case pipeline.FormatText, pipeline.FormatJSON, pipeline.FormatDOT:
		return true
	}
	return false
}

// basePath derives the base output path from the output and input
// paths. An empty output falls back to the input with its extension
// stripped; an output carrying a format extension loses it.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes rendered artifacts to their destinations. A
// single console format without --out goes to stdout; everything else
// is written to files derived from the output or input path.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 {
		f := p.formats[0]
		if p.output == "" && consoleFormat(f) {
			return writeToStdout(p.artifacts[f])
		}
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + f
		}
		if err := writeFile(path, p.artifacts[f]); err != nil {
			return err
		}
		printFile(path)
		return nil
	}

	base := basePath(p.output, p.input)
	for _, f := range p.formats {
		path := base + "." + f
		if err := writeFile(path, p.artifacts[f]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

func writeToStdout(data []byte) error {
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := os.Stdout.Write([]byte{'\n'})
		return err
	}
	return nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}
