// Package parsing turns requisition strings into structured requirement models.
package parsing

import (
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/lead-validator/internal/types"
)

// commentsMarker separates the meta segment from the comments segment.
var commentsMarker = regexp.MustCompile(`(?i)\|\s*comments\s*:`)

// ParseRequisition splits a requisition into its meta pairs and its comments
// dictionary. It never fails: text it cannot classify ends up under "lines".
func ParseRequisition(req string) *types.ParsedRequisition {
	parsed := types.NewParsedRequisition()

	parts := commentsMarker.Split(req, 2)
	parseMeta(strings.TrimSpace(parts[0]), parsed.Meta)

	if len(parts) < 2 {
		return parsed
	}
	commentHTML := strings.TrimSpace(parts[1])
	if commentHTML == "" {
		return parsed
	}

	parsed.Comments = ClassifyComments(CommentNodes(commentHTML))
	return parsed
}

// parseMeta reads "key: value | key: value" pairs. Later keys overwrite earlier ones.
func parseMeta(segment string, meta map[string]string) {
	if segment == "" {
		return
	}
	for _, raw := range strings.Split(segment, "|") {
		seg := strings.TrimSpace(raw)
		if seg == "" {
			continue
		}
		key, value, ok := splitKeyValue(seg)
		if !ok {
			continue
		}
		if k := NormalizeKey(key); k != "" {
			meta[k] = value
		}
	}
}

// CommentNodes returns the text of every block-level node (p, div) in document
// order, with non-breaking spaces folded and surrounding whitespace trimmed.
// Markup without block nodes falls back to one node per text line.
func CommentNodes(commentHTML string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(commentHTML))
	if err != nil {
		return textLines(commentHTML)
	}

	blocks := doc.Find("p, div")
	if blocks.Length() == 0 {
		return textLines(doc.Text())
	}

	nodes := make([]string, 0, blocks.Length())
	blocks.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, cleanNodeText(s.Text()))
	})
	return nodes
}

func textLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = cleanNodeText(line)
	}
	return lines
}

func cleanNodeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}

// ClassifyComments runs the line classifier over already extracted nodes.
func ClassifyComments(nodes []string) map[string]types.SectionDict {
	c := newCommentClassifier()
	for _, node := range nodes {
		c.feed(node)
	}
	return c.comments
}

// commentClassifier assigns each comment line to a section and key.
// Its only state is the current section and a key still waiting for its value.
type commentClassifier struct {
	comments   map[string]types.SectionDict
	section    string
	pendingKey string
}

func newCommentClassifier() *commentClassifier {
	return &commentClassifier{
		comments: map[string]types.SectionDict{},
		section:  types.SectionRoot,
	}
}

func (c *commentClassifier) feed(node string) {
	text := cleanNodeText(node)

	// A blank line drops a key that never got its value.
	if text == "" {
		c.pendingKey = ""
		return
	}

	if c.pendingKey != "" {
		c.add(c.pendingKey, text)
		c.pendingKey = ""
		return
	}

	line := StripNumberedPrefix(text)
	key, value, ok := splitKeyValue(line)
	if !ok {
		c.push(types.LinesKey, line)
		return
	}

	norm := NormalizeKey(key)
	switch {
	case norm == "":
		c.push(types.LinesKey, line)
	case (norm == types.SectionTitles || norm == types.SectionIndustry) && value == "":
		c.enter(norm)
	case norm == types.SectionCustomIndustries:
		c.enter(norm)
		if value != "" {
			c.add(norm, value)
		}
	case value == "":
		c.ensure(c.section)
		c.pendingKey = norm
	default:
		c.add(norm, value)
	}
}

func (c *commentClassifier) enter(section string) {
	c.section = section
	c.pendingKey = ""
	c.ensure(section)
}

func (c *commentClassifier) ensure(section string) types.SectionDict {
	dict, ok := c.comments[section]
	if !ok {
		dict = types.SectionDict{}
		c.comments[section] = dict
	}
	return dict
}

// add records a raw value under key in the current section, splitting list keys.
func (c *commentClassifier) add(key, raw string) {
	if IsMultiValuedKey(key) {
		c.push(key, SplitCSVLike(raw)...)
		return
	}
	c.push(key, raw)
}

func (c *commentClassifier) push(key string, values ...string) {
	dict := c.ensure(c.section)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(dict[key], v) {
			continue
		}
		dict[key] = append(dict[key], v)
	}
}

// splitKeyValue splits on the first colon and trims both halves.
func splitKeyValue(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
