package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scaffgen/pkg/errors"
)

func parseOne(t *testing.T, frontmatter string) (Directive, error) {
	t.Helper()
	pairs, err := Parse(frontmatter + "\n---\nbody\n")
	if err != nil {
		return Directive{}, err
	}
	require.Len(t, pairs, 1)
	return pairs[0].Directive, nil
}

func TestDecodeDirective_Defaults(t *testing.T) {
	dir, err := parseOne(t, "to: out.txt")
	require.NoError(t, err)

	assert.Equal(t, "out.txt", dir.To)
	assert.False(t, dir.SkipExists)
	assert.Empty(t, dir.SkipGlob)
	assert.Empty(t, dir.Message)
	assert.Empty(t, dir.Injections)
}

func TestDecodeDirective_MissingToFails(t *testing.T) {
	_, err := parseOne(t, "message: hi")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
}

func TestDecodeDirective_UnknownKeyFails(t *testing.T) {
	_, err := parseOne(t, "to: out.txt\nbanana: yes")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
}

func TestDecodeDirective_InvalidPatternFails(t *testing.T) {
	_, err := parseOne(t, `to: out.txt
injections:
  - into: other.txt
    content: x
    after: "([unclosed"`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
}

func TestDecodeDirective_InvalidSkipGlobFails(t *testing.T) {
	_, err := parseOne(t, `to: out.txt
skip_glob: "src/[unclosed"`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
}

func TestDecodeDirective_KindResolution(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		wantKind    Kind
		wantPattern bool
	}{
		{"prepend", "prepend: true", KindPrepend, false},
		{"append", "append: true", KindAppend, false},
		{"before", `before: "END"`, KindBefore, true},
		{"before_last", `before_last: "END"`, KindBeforeLast, true},
		{"before_all", `before_all: "END"`, KindBeforeAll, true},
		{"after", `after: "END"`, KindAfter, true},
		{"after_last", `after_last: "END"`, KindAfterLast, true},
		{"after_all", `after_all: "END"`, KindAfterAll, true},
		{"remove_lines", `remove_lines: "END"`, KindRemoveLines, true},
		{"replace", `replace: "END"`, KindReplace, true},
		{"replace_all", `replace_all: "END"`, KindReplaceAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := parseOne(t, `to: out.txt
injections:
  - into: other.txt
    content: x
    `+tt.field)
			require.NoError(t, err)
			require.Len(t, dir.Injections, 1)

			inj := dir.Injections[0]
			assert.Equal(t, tt.wantKind, inj.Kind)
			if tt.wantPattern {
				require.NotNil(t, inj.Pattern)
				assert.Equal(t, "END", inj.Pattern.String())
			} else {
				assert.Nil(t, inj.Pattern)
			}
		})
	}
}

func TestDecodeDirective_NoKindIsLegal(t *testing.T) {
	dir, err := parseOne(t, `to: out.txt
injections:
  - into: other.txt
    content: x`)
	require.NoError(t, err)
	require.Len(t, dir.Injections, 1)
	assert.Equal(t, KindNone, dir.Injections[0].Kind)
}

func TestDecodeDirective_MultiplePlacementFieldsFail(t *testing.T) {
	_, err := parseOne(t, `to: out.txt
injections:
  - into: other.txt
    content: x
    prepend: true
    after: "END"`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInjectionConflict))
	assert.Contains(t, err.Error(), "prepend")
	assert.Contains(t, err.Error(), "after")
}

func TestDecodeDirective_InjectionMissingIntoFails(t *testing.T) {
	_, err := parseOne(t, `to: out.txt
injections:
  - content: x
    append: true`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
}

func TestDecodeDirective_SkipIfAndInline(t *testing.T) {
	dir, err := parseOne(t, `to: out.txt
injections:
  - into: other.txt
    content: x
    inline: true
    skip_if: "already"
    after: "END"`)
	require.NoError(t, err)
	require.Len(t, dir.Injections, 1)

	inj := dir.Injections[0]
	assert.True(t, inj.Inline)
	require.NotNil(t, inj.SkipIf)
	assert.True(t, inj.SkipIf.MatchString("it is already here"))
}

func TestDecodeDirective_FullDirective(t *testing.T) {
	dir, err := parseOne(t, `to: src/models/post.go
skip_exists: true
skip_glob: "src/models/post*"
message: "model post generated"
injections:
  - into: src/models/mod.go
    content: "pub mod post;"
    before_last: "}"`)
	require.NoError(t, err)

	assert.Equal(t, "src/models/post.go", dir.To)
	assert.True(t, dir.SkipExists)
	assert.Equal(t, "src/models/post*", dir.SkipGlob)
	assert.Equal(t, "model post generated", dir.Message)
	require.Len(t, dir.Injections, 1)
	assert.Equal(t, KindBeforeLast, dir.Injections[0].Kind)
}
