// Package gen is the generation orchestrator: it renders a document,
// splits it into (directive, body) pairs and processes each pair in source
// order — skip checks, body write, then injections.
package gen

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffgen/pkg/document"
	"github.com/arthur-debert/scaffgen/pkg/errors"
	"github.com/arthur-debert/scaffgen/pkg/filesystem"
	"github.com/arthur-debert/scaffgen/pkg/inject"
	"github.com/arthur-debert/scaffgen/pkg/logging"
	"github.com/arthur-debert/scaffgen/pkg/render"
	"github.com/arthur-debert/scaffgen/pkg/report"
	"github.com/arthur-debert/scaffgen/pkg/types"
)

// Generator runs the full pipeline. Construction wires the storage and
// notification ports; both default to real implementations and can be
// swapped for in-memory ones in tests.
type Generator struct {
	fs       types.FS
	reporter types.Reporter
	renderer *render.Renderer
	baseDir  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithFS replaces the storage port.
func WithFS(fsys types.FS) Option {
	return func(g *Generator) { g.fs = fsys }
}

// WithReporter replaces the notification port.
func WithReporter(r types.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithBaseDir resolves all relative target paths and globs against dir.
func WithBaseDir(dir string) Option {
	return func(g *Generator) { g.baseDir = dir }
}

// New creates a Generator writing to the OS filesystem and reporting to
// the console.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:       filesystem.NewOS(),
		reporter: report.NewConsole(),
		renderer: render.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterTemplate adds a reusable template to the renderer's namespace.
func (g *Generator) RegisterTemplate(name, text string) error {
	return g.renderer.Register(name, text)
}

// Generate renders the document text against vars and runs the pipeline.
func (g *Generator) Generate(input string, vars types.Vars) (types.Result, error) {
	rendered, err := g.renderer.Render(input, vars)
	if err != nil {
		return types.Result{}, err
	}
	return g.run(rendered)
}

// GenerateNamed renders a previously registered template and runs the
// pipeline.
func (g *Generator) GenerateNamed(name string, vars types.Vars) (types.Result, error) {
	rendered, err := g.renderer.RenderNamed(name, vars)
	if err != nil {
		return types.Result{}, err
	}
	return g.run(rendered)
}

// run processes the rendered document. The first failing pair aborts the
// remaining ones; files already written stay on disk. The final message is
// an explicit fold over the pair outcomes.
func (g *Generator) run(rendered string) (types.Result, error) {
	logger := logging.GetLogger("gen")

	pairs, err := document.Parse(rendered)
	if err != nil {
		return types.Result{}, err
	}
	logger.Debug().Int("pairs", len(pairs)).Msg("document parsed")

	var messages []string
	for _, pair := range pairs {
		outcome, err := g.runPair(pair)
		if err != nil {
			return types.Result{}, err
		}
		if outcome.Skipped() {
			continue
		}
		if outcome.Message != "" {
			messages = append(messages, outcome.Message)
		}
	}

	return types.Result{Message: strings.Join(messages, "\n")}, nil
}

// runPair drives one pair through its states: skip-exists and skip-glob
// checks, body write with added/overwritten notification, then each
// injection in declared order.
func (g *Generator) runPair(pair document.Pair) (types.Outcome, error) {
	dir := pair.Directive
	target := g.resolve(dir.To)

	if dir.SkipExists && g.fs.Exists(target) {
		g.reporter.SkippedExisting(target)
		return types.Outcome{Status: types.PairSkippedExists}, nil
	}
	if dir.SkipGlob != "" {
		matches, err := g.fs.Glob(g.resolve(dir.SkipGlob))
		if err != nil {
			return types.Outcome{}, errors.Wrapf(err, errors.ErrGlobInvalid, "cannot evaluate skip_glob %q", dir.SkipGlob)
		}
		if len(matches) > 0 {
			g.reporter.SkippedExisting(target)
			return types.Outcome{Status: types.PairSkippedGlob}, nil
		}
	}

	if g.fs.Exists(target) {
		g.reporter.Overwritten(target)
	} else {
		g.reporter.Added(target)
	}
	if err := g.fs.WriteFile(target, []byte(pair.Body), 0644); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target)
	}

	for _, inj := range dir.Injections {
		if err := inject.Apply(g.fs, g.reporter, g.resolve(inj.Into), inj); err != nil {
			return types.Outcome{}, err
		}
	}

	return types.Outcome{Status: types.PairWritten, Message: dir.Message}, nil
}

func (g *Generator) resolve(path string) string {
	if g.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.baseDir, path)
}
