package document

import (
	"strings"

	"github.com/arthur-debert/scaffgen/pkg/errors"
)

// separator is the delimiter convention: a line consisting solely of "---"
// (surrounding whitespace tolerated) separates frontmatter and body blocks.
const separator = "---"

// Parse splits rendered text into (directive, body) pairs and decodes each
// frontmatter block. Line endings are normalized first so CRLF documents
// parse identically to their LF equivalents. A document must yield an even
// number of non-empty chunks; an odd remainder is a parse error and nothing
// is decoded further.
func Parse(rendered string) ([]Pair, error) {
	chunks := splitChunks(normalize(rendered))

	if len(chunks)%2 != 0 {
		return nil, errors.Newf(errors.ErrDocumentParse,
			"cannot split document into frontmatter and body: odd number of chunks (%d)", len(chunks))
	}

	pairs := make([]Pair, 0, len(chunks)/2)
	for i := 0; i < len(chunks); i += 2 {
		dir, err := decodeDirective(chunks[i])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{
			Directive: dir,
			Body:      strings.TrimSpace(chunks[i+1]),
		})
	}
	return pairs, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// splitChunks cuts the text on separator lines and drops chunks that are
// empty after trimming, so leading and trailing delimiters are harmless.
func splitChunks(s string) []string {
	var chunks []string
	var current []string

	flush := func() {
		chunk := strings.Join(current, "\n")
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == separator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return chunks
}
