package generate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bzlmod-tools/modcmake/internal/cmakegen"
	"github.com/bzlmod-tools/modcmake/internal/modfile"
	"github.com/bzlmod-tools/modcmake/internal/platform"
)

// Error classes returned by Run and Load.
var (
	ErrRead  = errors.New("cannot read module file")
	ErrWrite = errors.New("cannot write output")
	ErrStale = errors.New("output is out of date")
)

// Stdout is the output path that sends the rendered file to Request.Stdout.
const Stdout = "-"

// Request describes one conversion.
type Request struct {
	ManifestPath string
	OutputPath   string
	Options      cmakegen.Options

	// Check compares instead of writing; a difference yields ErrStale.
	Check bool

	// Stdout receives the output when OutputPath is "-". Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what a conversion produced.
type Result struct {
	Dependencies []modfile.Dependency
	Content      string

	// Written is false in check mode.
	Written bool

	// Unchanged reports that the output already held Content.
	Unchanged bool
}

// Load reads and evaluates the module file at path, returning its
// dependencies in declaration order. A nil logger discards diagnostics.
func Load(path string, logger *slog.Logger) ([]modfile.Dependency, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	f, err := modfile.Parse(path, src)
	if err != nil {
		return nil, err
	}
	acc := modfile.NewCollector()
	if err := modfile.Evaluate(f, acc, logger); err != nil {
		return nil, err
	}

	for _, name := range acc.Duplicates() {
		logger.Warn("dependency declared more than once; the last version wins in CMake", "name", name)
	}
	return acc.Dependencies(), nil
}

// Run performs the conversion described by req.
func Run(req Request, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := req.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render options: %w", err)
	}
	if req.Check && req.OutputPath == Stdout {
		return nil, fmt.Errorf("check mode needs an output file, not %q", Stdout)
	}

	deps, err := Load(req.ManifestPath, logger)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Dependencies: deps,
		Content:      cmakegen.RenderDependencies(deps, req.Options),
	}
	logger.Debug("rendered output", "dependencies", len(deps), "bytes", len(res.Content))

	if req.OutputPath == Stdout {
		w := req.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := io.WriteString(w, res.Content); err != nil {
			return nil, fmt.Errorf("%w to stdout: %w", ErrWrite, err)
		}
		res.Written = true
		return res, nil
	}

	existing, err := os.ReadFile(req.OutputPath)
	switch {
	case err == nil:
		res.Unchanged = bytes.Equal(existing, []byte(res.Content))
	case errors.Is(err, fs.ErrNotExist):
	default:
		if req.Check {
			return nil, fmt.Errorf("reading %s: %w", req.OutputPath, err)
		}
	}

	if req.Check {
		if !res.Unchanged {
			return res, fmt.Errorf("%w: %s does not match %s; regenerate it", ErrStale, req.OutputPath, req.ManifestPath)
		}
		logger.Debug("output is up to date", "path", req.OutputPath)
		return res, nil
	}

	if err := platform.WriteFile(req.OutputPath, []byte(res.Content), 0644); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWrite, req.OutputPath, err)
	}
	res.Written = true
	logger.Debug("wrote output", "path", req.OutputPath, "unchanged", res.Unchanged)
	return res, nil
}
