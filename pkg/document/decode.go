package document

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/scaffgen/pkg/errors"
)

// rawDirective mirrors the frontmatter notation. Boolean keys default to
// false; only "to" is required.
type rawDirective struct {
	To         string         `yaml:"to"`
	SkipExists bool           `yaml:"skip_exists"`
	SkipGlob   string         `yaml:"skip_glob"`
	Message    string         `yaml:"message"`
	Injections []rawInjection `yaml:"injections"`
}

type rawInjection struct {
	Into    string   `yaml:"into"`
	Content string   `yaml:"content"`
	Inline  bool     `yaml:"inline"`
	SkipIf  *Pattern `yaml:"skip_if"`

	Prepend     bool     `yaml:"prepend"`
	Append      bool     `yaml:"append"`
	Before      *Pattern `yaml:"before"`
	BeforeLast  *Pattern `yaml:"before_last"`
	BeforeAll   *Pattern `yaml:"before_all"`
	After       *Pattern `yaml:"after"`
	AfterLast   *Pattern `yaml:"after_last"`
	AfterAll    *Pattern `yaml:"after_all"`
	RemoveLines *Pattern `yaml:"remove_lines"`
	Replace     *Pattern `yaml:"replace"`
	ReplaceAll  *Pattern `yaml:"replace_all"`
}

// decodeDirective parses one frontmatter block. Unknown keys are errors.
func decodeDirective(block string) (Directive, error) {
	dec := yaml.NewDecoder(strings.NewReader(block))
	dec.KnownFields(true)

	var raw rawDirective
	if err := dec.Decode(&raw); err != nil {
		// Pattern compilation failures carry their own code; everything
		// else is a malformed frontmatter block.
		if errors.IsErrorCode(err, errors.ErrPatternInvalid) {
			return Directive{}, err
		}
		return Directive{}, errors.Wrap(err, errors.ErrDocumentParse, "invalid frontmatter block")
	}

	if raw.To == "" {
		return Directive{}, errors.New(errors.ErrDocumentParse, "frontmatter is missing required key \"to\"")
	}
	if raw.SkipGlob != "" && !doublestar.ValidatePattern(raw.SkipGlob) {
		return Directive{}, errors.Newf(errors.ErrGlobInvalid, "invalid skip_glob pattern %q", raw.SkipGlob)
	}

	dir := Directive{
		To:         raw.To,
		SkipExists: raw.SkipExists,
		SkipGlob:   raw.SkipGlob,
		Message:    raw.Message,
	}
	for i, rawInj := range raw.Injections {
		inj, err := rawInj.resolve()
		if err != nil {
			if sgErr, ok := err.(*errors.ScaffgenError); ok {
				return Directive{}, sgErr.WithDetail("injection", i).WithDetail("to", raw.To)
			}
			return Directive{}, err
		}
		dir.Injections = append(dir.Injections, inj)
	}
	return dir, nil
}

// resolve turns the flat placement fields into a single tagged variant.
// More than one placement field is a configuration error; zero is legal
// and yields KindNone, which the interpreter warns about at apply time.
func (r rawInjection) resolve() (Injection, error) {
	if r.Into == "" {
		return Injection{}, errors.New(errors.ErrDocumentParse, "injection is missing required key \"into\"")
	}

	inj := Injection{
		Into:    r.Into,
		Content: r.Content,
		Inline:  r.Inline,
	}
	if r.SkipIf != nil {
		inj.SkipIf = r.SkipIf.Regexp()
	}

	var set []string
	pick := func(kind Kind, pattern *Pattern) {
		set = append(set, kind.String())
		inj.Kind = kind
		if pattern != nil {
			inj.Pattern = pattern.Regexp()
		}
	}

	if r.Prepend {
		pick(KindPrepend, nil)
	}
	if r.Append {
		pick(KindAppend, nil)
	}
	if r.Before != nil {
		pick(KindBefore, r.Before)
	}
	if r.BeforeLast != nil {
		pick(KindBeforeLast, r.BeforeLast)
	}
	if r.BeforeAll != nil {
		pick(KindBeforeAll, r.BeforeAll)
	}
	if r.After != nil {
		pick(KindAfter, r.After)
	}
	if r.AfterLast != nil {
		pick(KindAfterLast, r.AfterLast)
	}
	if r.AfterAll != nil {
		pick(KindAfterAll, r.AfterAll)
	}
	if r.RemoveLines != nil {
		pick(KindRemoveLines, r.RemoveLines)
	}
	if r.Replace != nil {
		pick(KindReplace, r.Replace)
	}
	if r.ReplaceAll != nil {
		pick(KindReplaceAll, r.ReplaceAll)
	}

	if len(set) > 1 {
		return Injection{}, errors.Newf(errors.ErrInjectionConflict,
			"injection into %q sets more than one placement field: %s",
			r.Into, strings.Join(set, ", "))
	}
	return inj, nil
}
