package markdown

import (
	"regexp"
	"strings"

	"github.com/bgraf/mdship/option"
)

// imagePattern matches ![alt](path "title"). Alt and path are non-greedy, the
// title is optional and the whitespace before it belongs to neither group.
var imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\s*(?:"(.*?)")?\)`)

// remotePrefix marks image paths that already point at a remote resource.
const remotePrefix = "http"

// Occurrence is one image reference found in a document body.
type Occurrence struct {
	Offset int    // Byte offset of Text within the original body
	Text   string // Full matched text
	Alt    string
	Path   string
	Title  option.Option[string]
}

// End returns the offset just past the matched text.
func (occ Occurrence) End() int {
	return occ.Offset + len(occ.Text)
}

// IsRemote reports whether the occurrence already references a remote URL.
func (occ Occurrence) IsRemote() bool {
	return strings.HasPrefix(occ.Path, remotePrefix)
}

// Scan returns all image references of body in document order.
func Scan(body string) []Occurrence {
	matches := imagePattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}

	occurrences := make([]Occurrence, 0, len(matches))
	for _, m := range matches {
		hasTitle := m[6] >= 0
		title := ""
		if hasTitle {
			title = body[m[6]:m[7]]
		}

		occurrences = append(occurrences, Occurrence{
			Offset: m[0],
			Text:   body[m[0]:m[1]],
			Alt:    body[m[2]:m[3]],
			Path:   strings.TrimSpace(body[m[4]:m[5]]),
			Title:  option.FromMatch(title, hasTitle),
		})
	}

	return occurrences
}
