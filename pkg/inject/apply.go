package inject

import (
	"github.com/arthur-debert/scaffgen/pkg/document"
	"github.com/arthur-debert/scaffgen/pkg/errors"
	"github.com/arthur-debert/scaffgen/pkg/logging"
	"github.com/arthur-debert/scaffgen/pkg/types"
)

// Apply runs one injection against the file at path. The target must
// already exist; injections never create their target. A skip_if match
// skips silently. "No pattern match" leaves the file content unchanged but
// still writes and notifies, matching the idempotent-generation model.
func Apply(fsys types.FS, reporter types.Reporter, path string, inj document.Injection) error {
	logger := logging.GetLogger("inject")

	if !fsys.Exists(path) {
		return errors.Newf(errors.ErrTargetMissing, "cannot inject into %s: file does not exist", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read injection target %s", path)
	}
	content := string(data)

	if inj.SkipIf != nil && inj.SkipIf.MatchString(content) {
		logger.Debug().Str("path", path).Str("skip_if", inj.SkipIf.String()).Msg("injection skipped")
		return nil
	}

	patched := dispatch(content, inj)
	if inj.Kind == document.KindNone {
		logger.Warn().Str("path", path).Msg("no injection made: no placement field set")
	}

	if err := fsys.WriteFile(path, []byte(patched), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write injection target %s", path)
	}
	reporter.Injected(path)
	return nil
}

// dispatch evaluates the injection's single kind against content.
func dispatch(content string, inj document.Injection) string {
	payload := inj.Content

	switch inj.Kind {
	case document.KindPrepend:
		return payload + "\n" + content
	case document.KindAppend:
		return content + "\n" + payload
	case document.KindBefore:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectFirst, PlaceBefore)
	case document.KindBeforeLast:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectLast, PlaceBefore)
	case document.KindBeforeAll:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectAll, PlaceBefore)
	case document.KindAfter:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectFirst, PlaceAfter)
	case document.KindAfterLast:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectLast, PlaceAfter)
	case document.KindAfterAll:
		return insertAtMatches(content, payload, inj.Inline, inj.Pattern, SelectAll, PlaceAfter)
	case document.KindRemoveLines:
		return removeLines(content, inj.Pattern)
	case document.KindReplace:
		return replaceFirst(content, payload, inj.Pattern)
	case document.KindReplaceAll:
		return inj.Pattern.ReplaceAllLiteralString(content, payload)
	default:
		return content
	}
}
