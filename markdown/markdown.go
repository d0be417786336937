package markdown

import (
	"regexp"
	"strings"
)

// specials are the inline characters the platform treats as markdown.
const specials = "*`_~|"

var (
	// quote markers at line starts and [text](destination) links.
	// link text cannot contain brackets, destinations cannot contain
	// parentheses; both restrictions match the platform renderer
	// closely enough for escaping purposes.
	escapeCommon = `^>(?:>>)?\s|\[[^\[\]]*\]\([^()]+\)`

	stockRe = regexp.MustCompile(`(?m)(?P<markdown>[_\\~|*` + "`" + `]|` + escapeCommon + `)`)

	// either an already-suppressed <url> or a plain http(s)/steam URL
	urlStockRe = regexp.MustCompile(
		`(?m)(?P<url><[^: >]+:/[^ >]+>|(?:https?|steam)://[^\s<]+[^<.,:;"'\]\s])|(?P<markdown>[_\\~|*` + "`" + `]|` + escapeCommon + `)`)

	commonRe = regexp.MustCompile(`(?m)` + escapeCommon)
)

type config struct {
	asNeeded    bool
	ignoreLinks bool
}

type Option func(*config)

// AsNeeded escapes only markdown characters that would actually pair
// up with a later occurrence, so **hello** becomes \*\*hello** rather
// than \*\*hello\*\*. It can be abused by clever input; the default
// full escape cannot. Not compatible with link preservation.
func AsNeeded() Option {
	return func(c *config) {
		c.asNeeded = true
	}
}

// EscapeLinks makes Escape and Remove treat URLs like any other text
// instead of leaving them intact.
func EscapeLinks() Option {
	return func(c *config) {
		c.ignoreLinks = false
	}
}

// Escape backslash-escapes the platform's markdown in text.
func Escape(text string, options ...Option) string {
	cfg := config{ignoreLinks: true}
	for _, o := range options {
		o(&cfg)
	}

	if cfg.asNeeded {
		return escapeAsNeeded(text)
	}

	re := stockRe
	if cfg.ignoreLinks {
		re = urlStockRe
	}
	return rewrite(re, text, func(markdown string) string {
		return `\` + markdown
	})
}

// Remove strips the platform's markdown characters from text. It is
// not markdown aware: "10 * 5" becomes "10  5".
func Remove(text string, options ...Option) string {
	cfg := config{ignoreLinks: true}
	for _, o := range options {
		o(&cfg)
	}

	re := stockRe
	if cfg.ignoreLinks {
		re = urlStockRe
	}
	return rewrite(re, text, func(string) string {
		return ""
	})
}

// rewrite replaces every markdown-group match through mark, keeping
// url-group matches verbatim.
func rewrite(re *regexp.Regexp, text string, mark func(string) string) string {
	urlIdx := re.SubexpIndex("url")

	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		match := text[m[0]:m[1]]
		if urlIdx > 0 && m[2*urlIdx] != -1 {
			b.WriteString(match)
		} else {
			b.WriteString(mark(match))
		}
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// escapeAsNeeded escapes a special character only when a later
// occurrence of the same character exists that is not glued to yet
// another one, which is when the renderer would pair them up. This is
// a scan because RE2 has no lookahead.
func escapeAsNeeded(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)

	needed := make([]bool, len(text))
	// seen[c] is true once a later standalone occurrence of c exists
	var seen [256]bool
	for i := len(text) - 1; i >= 0; i-- {
		c := text[i]
		if !strings.Contains(specials, string(c)) {
			continue
		}
		if seen[c] {
			needed[i] = true
		}
		if i == 0 || text[i-1] != c {
			seen[c] = true
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if needed[i] {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}

	return rewrite(commonRe, b.String(), func(markdown string) string {
		return `\` + markdown
	})
}
