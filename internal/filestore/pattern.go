package filestore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codeninja55/rudicom/dicom"
)

// tokenNone and tokenEmpty are rendered in place of a pattern token when the
// referenced tag is absent from the dataset, or present but carries an
// empty/whitespace value, respectively.
const (
	tokenNone  = "<<none>>"
	tokenEmpty = "<<empty>>"
)

// DerivePath substitutes DICOM tag values into pattern and returns the
// resulting relative path. pattern tokens look like "{Keyword}",
// "{Keyword:<N}" (keep the first N characters), or "{Keyword:>N}" (keep the
// last N characters) — the keyword is looked up by dicom/tag keyword, and
// its coerced string form is substituted. Any literal text between tokens,
// including path separators, passes through unchanged.
func DerivePath(ds *dicom.DataSet, pattern string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("filestore: unterminated token in pattern %q", pattern)
		}
		token := pattern[i+1 : i+end]
		rendered, err := renderToken(ds, token)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
		i += end + 1
	}
	return b.String(), nil
}

func renderToken(ds *dicom.DataSet, token string) (string, error) {
	keyword := token
	truncate := byte(0)
	width := -1

	if colon := strings.IndexByte(token, ':'); colon >= 0 {
		keyword = token[:colon]
		suffix := token[colon+1:]
		if len(suffix) < 2 || (suffix[0] != '<' && suffix[0] != '>') {
			return "", fmt.Errorf("filestore: bad truncation spec in token %q", token)
		}
		truncate = suffix[0]
		n, err := strconv.Atoi(suffix[1:])
		if err != nil {
			return "", fmt.Errorf("filestore: bad truncation width in token %q: %w", token, err)
		}
		width = n
	}

	value, present := LookupKeyword(ds, keyword)
	var rendered string
	switch {
	case !present:
		rendered = tokenNone
	case value == "":
		rendered = tokenEmpty
	default:
		rendered = value
	}

	if width >= 0 && rendered != tokenNone && rendered != tokenEmpty {
		switch truncate {
		case '<':
			if len(rendered) > width {
				rendered = rendered[:width]
			}
		case '>':
			if len(rendered) > width {
				rendered = rendered[len(rendered)-width:]
			}
		}
	}
	return rendered, nil
}
