package doc

import (
	"html"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	reMetaCharset = regexp.MustCompile(`(?i)<meta[^>]+charset=["']?([A-Za-z0-9_-]+)`)
	reScriptStyle = regexp.MustCompile(`(?is)<(script|style|noscript)[^>]*>.*?</(script|style|noscript)>`)
	reTag         = regexp.MustCompile(`(?s)<[^>]*>`)
	reBlankLines  = regexp.MustCompile(`\n{3,}`)
)

// htmlToText strips markup from an HTML page, decoding the declared charset
// first. The ECJ site serves some pages in legacy encodings.
func htmlToText(data []byte) (string, error) {
	text, err := decodeCharset(data)
	if err != nil {
		return "", err
	}

	text = reScriptStyle.ReplaceAllString(text, "\n")
	text = reTag.ReplaceAllString(text, "\n")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = reBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}

// decodeCharset decodes the page per its declared meta charset. UTF-8 and
// unknown declarations pass through unchanged.
func decodeCharset(data []byte) (string, error) {
	head := data
	if len(head) > 2048 {
		head = head[:2048]
	}

	m := reMetaCharset.FindSubmatch(head)
	if m == nil {
		return string(data), nil
	}

	name := strings.ToLower(string(m[1]))
	if name == "utf-8" || name == "utf8" {
		return string(data), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		// Unknown label: fall back to raw bytes rather than failing the source.
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", eris.Wrapf(err, "doc: decode charset %q", name)
	}

	return string(decoded), nil
}
