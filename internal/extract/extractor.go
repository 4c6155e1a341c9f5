// Package extract turns HTML fragment files into normalized manifest file
// entries. Extraction is deliberately not a structural HTML parse: headings
// and paragraphs are located by first-occurrence, non-greedy tag matches,
// which misbehaves on nested same-named tags.
package extract

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quantmind-br/sitenav-go/internal/domain"
	"github.com/quantmind-br/sitenav-go/internal/site"
	"github.com/quantmind-br/sitenav-go/internal/utils"
)

var (
	// secondaryHeadingRe matches the first <h2> element, attributes ignored
	secondaryHeadingRe = regexp.MustCompile(`(?is)<h2(?:\s[^>]*)?>(.*?)</h2>`)

	// primaryHeadingRe is the fallback when no <h2> is present
	primaryHeadingRe = regexp.MustCompile(`(?is)<h1(?:\s[^>]*)?>(.*?)</h1>`)

	// paragraphRe matches the first <p> element
	paragraphRe = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>(.*?)</p>`)

	// tagRe strips any inline markup left inside an extracted span
	tagRe = regexp.MustCompile(`<[^>]*>`)

	// whitespaceRe collapses runs of whitespace to a single space
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// entityReplacements is the fixed decode table, applied in order.
// Unrecognized entities stay verbatim.
var entityReplacements = []struct {
	entity string
	text   string
}{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&#96;", "`"},
}

// Extractor builds file entries from HTML fragments under a project root
type Extractor struct {
	root string
}

// New creates a new extractor rooted at the given project directory
func New(root string) *Extractor {
	return &Extractor{root: root}
}

// Extract reads one HTML fragment and produces its file entry. dir is the
// configured child directory (resolved against the root when relative);
// overrides are keyed by the file's base name without extension.
func (e *Extractor) Extract(dir, name string, overrides map[string]site.Override) (domain.FileEntry, error) {
	full := filepath.Join(utils.ResolvePath(e.root, dir), name)

	data, err := os.ReadFile(full)
	if err != nil {
		return domain.FileEntry{}, domain.NewReadError(full, err)
	}
	content := string(data)

	id := strings.TrimSuffix(name, filepath.Ext(name))

	label, found := firstTagText(content, secondaryHeadingRe)
	if !found {
		label, _ = firstTagText(content, primaryHeadingRe)
	}
	description, _ := firstTagText(content, paragraphRe)

	if ov, ok := overrides[id]; ok {
		if ov.Label != nil {
			label = *ov.Label
		}
		if ov.Description != nil {
			description = *ov.Description
		}
	}
	if label == "" {
		label = id
	}

	relDir := utils.RootRelative(e.root, utils.ResolvePath(e.root, dir))

	return domain.FileEntry{
		ID:          id,
		Label:       label,
		Description: description,
		Path:        path.Join(relDir, name),
	}, nil
}

// firstTagText returns the cleaned text of the first match of re. The
// second result reports whether the element was present at all; a present
// element whose text cleans to empty is still a match.
func firstTagText(content string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return CleanText(m[1]), true
}

// CleanText strips remaining inline tags, collapses whitespace, trims, and
// decodes the fixed entity table.
func CleanText(raw string) string {
	text := tagRe.ReplaceAllString(raw, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return DecodeEntities(text)
}

// DecodeEntities decodes the fixed set of character references in table
// order. Anything else, including numeric references outside the table, is
// left untouched.
func DecodeEntities(s string) string {
	for _, r := range entityReplacements {
		s = strings.ReplaceAll(s, r.entity, r.text)
	}
	return s
}
