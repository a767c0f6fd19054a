// Package document parses a fully rendered template into an ordered
// sequence of (directive, body) pairs. The directive block is strict YAML:
// unknown keys are rejected and every pattern-valued field must compile as
// a regular expression at decode time.
package document

import (
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/scaffgen/pkg/errors"
)

// Pair is one generation unit: a decoded directive and its rendered body.
type Pair struct {
	Directive Directive
	Body      string
}

// Directive describes what to do with one rendered body.
type Directive struct {
	// To is the destination file, resolved against the generator's base
	// directory when relative.
	To string

	// SkipExists aborts the unit without writing when To already exists.
	SkipExists bool

	// SkipGlob aborts the unit when the glob matches at least one
	// existing path.
	SkipGlob string

	// Message is surfaced to the caller when the unit is not skipped.
	Message string

	// Injections are applied, in order, after the body is written.
	Injections []Injection
}

// Kind identifies the single patch operation of an injection. The decoder
// guarantees at most one placement field is set, so dispatch is a plain
// switch on this tag.
type Kind int

const (
	KindNone Kind = iota
	KindPrepend
	KindAppend
	KindBefore
	KindBeforeLast
	KindBeforeAll
	KindAfter
	KindAfterLast
	KindAfterAll
	KindRemoveLines
	KindReplace
	KindReplaceAll
)

var kindNames = map[Kind]string{
	KindNone:        "none",
	KindPrepend:     "prepend",
	KindAppend:      "append",
	KindBefore:      "before",
	KindBeforeLast:  "before_last",
	KindBeforeAll:   "before_all",
	KindAfter:       "after",
	KindAfterLast:   "after_last",
	KindAfterAll:    "after_all",
	KindRemoveLines: "remove_lines",
	KindReplace:     "replace",
	KindReplaceAll:  "replace_all",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Injection is one patch operation against an already-existing file.
type Injection struct {
	// Into is the file to patch. It must exist when the injection runs.
	Into string

	// Content is the payload inserted or substituted.
	Content string

	// Inline splices the payload into the matched line's text instead of
	// inserting it as a new whole line.
	Inline bool

	// SkipIf skips the injection when the file's current content matches.
	SkipIf *regexp.Regexp

	// Kind selects the patch operation; Pattern is its argument for the
	// pattern-based kinds and nil for prepend/append/none.
	Kind    Kind
	Pattern *regexp.Regexp
}

// Pattern is a regexp that compiles during YAML decoding, so invalid
// patterns fail the parse before any file is touched.
type Pattern struct {
	re  *regexp.Regexp
	src string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return errors.Wrap(err, errors.ErrPatternInvalid, "pattern must be a string")
	}
	re, err := regexp.Compile(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern %q", raw)
	}
	p.re = re
	p.src = raw
	return nil
}

// Regexp returns the compiled expression.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

func (p *Pattern) String() string {
	return p.src
}
