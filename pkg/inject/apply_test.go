package inject

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scaffgen/pkg/document"
	"github.com/arthur-debert/scaffgen/pkg/errors"
	"github.com/arthur-debert/scaffgen/pkg/testutil"
)

func applyTo(t *testing.T, content string, inj document.Injection) (string, *testutil.RecordingReporter, error) {
	t.Helper()

	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("target.txt", []byte(content), 0644))
	reporter := testutil.NewRecordingReporter()

	err := Apply(fsys, reporter, "target.txt", inj)
	return fsys.MustContent("target.txt"), reporter, err
}

func TestApply_Prepend(t *testing.T) {
	got, rep, err := applyTo(t, "existing", document.Injection{
		Into: "target.txt", Content: "header", Kind: document.KindPrepend,
	})
	require.NoError(t, err)
	assert.Equal(t, "header\nexisting", got)
	assert.Equal(t, []string{"injected target.txt"}, rep.Calls)
}

func TestApply_Append(t *testing.T) {
	got, _, err := applyTo(t, "existing", document.Injection{
		Into: "target.txt", Content: "footer", Kind: document.KindAppend,
	})
	require.NoError(t, err)
	assert.Equal(t, "existing\nfooter", got)
}

func TestApply_AfterFirst(t *testing.T) {
	got, _, err := applyTo(t, "Hello1\nHello2\nHello3", document.Injection{
		Into: "target.txt", Content: "X",
		Kind: document.KindAfter, Pattern: regexp.MustCompile(`Hello`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello1\nX\nHello2\nHello3", got)
}

func TestApply_InlineBeforeFirst(t *testing.T) {
	got, _, err := applyTo(t, "World1\nWorld2\n", document.Injection{
		Into: "target.txt", Content: "Hello", Inline: true,
		Kind: document.KindBefore, Pattern: regexp.MustCompile(`World`),
	})
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld1\nWorld2\n", got)
}

func TestApply_RemoveLines(t *testing.T) {
	got, _, err := applyTo(t, "keep\ndrop\nkeep", document.Injection{
		Into: "target.txt",
		Kind: document.KindRemoveLines, Pattern: regexp.MustCompile(`drop`),
	})
	require.NoError(t, err)
	assert.Equal(t, "keep\nkeep", got)
}

func TestApply_ReplaceOnceVsAll(t *testing.T) {
	got, _, err := applyTo(t, "aXaXa", document.Injection{
		Into: "target.txt", Content: "Y",
		Kind: document.KindReplace, Pattern: regexp.MustCompile(`X`),
	})
	require.NoError(t, err)
	assert.Equal(t, "aYaXa", got)

	got, _, err = applyTo(t, "aXaXa", document.Injection{
		Into: "target.txt", Content: "Y",
		Kind: document.KindReplaceAll, Pattern: regexp.MustCompile(`X`),
	})
	require.NoError(t, err)
	assert.Equal(t, "aYaYa", got)
}

func TestApply_ReplacePayloadIsLiteral(t *testing.T) {
	got, _, err := applyTo(t, "name = old", document.Injection{
		Into: "target.txt", Content: "$1",
		Kind: document.KindReplaceAll, Pattern: regexp.MustCompile(`old`),
	})
	require.NoError(t, err)
	assert.Equal(t, "name = $1", got)
}

func TestApply_SkipIfMatches(t *testing.T) {
	got, rep, err := applyTo(t, "already injected", document.Injection{
		Into: "target.txt", Content: "again",
		SkipIf: regexp.MustCompile(`already`),
		Kind:   document.KindAppend,
	})
	require.NoError(t, err)
	assert.Equal(t, "already injected", got)
	assert.Empty(t, rep.Calls, "a skipped injection must not notify")
}

func TestApply_NoKindWarnsAndWritesUnchanged(t *testing.T) {
	got, rep, err := applyTo(t, "untouched", document.Injection{
		Into: "target.txt", Content: "ignored", Kind: document.KindNone,
	})
	require.NoError(t, err)
	assert.Equal(t, "untouched", got)
	// Write proceeds and the notification still fires.
	assert.Equal(t, []string{"injected target.txt"}, rep.Calls)
}

func TestApply_MissingTargetIsFatal(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	reporter := testutil.NewRecordingReporter()

	err := Apply(fsys, reporter, "missing.txt", document.Injection{
		Into: "missing.txt", Content: "x", Kind: document.KindAppend,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetMissing))
	assert.Empty(t, reporter.Calls)
}

func TestApply_NoMatchIsSilentNoOp(t *testing.T) {
	got, rep, err := applyTo(t, "alpha\nbeta", document.Injection{
		Into: "target.txt", Content: "X",
		Kind: document.KindAfter, Pattern: regexp.MustCompile(`gamma`),
	})
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta", got)
	assert.Equal(t, []string{"injected target.txt"}, rep.Calls)
}
