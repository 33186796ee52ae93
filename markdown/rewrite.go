package markdown

import (
	"fmt"

	"github.com/bgraf/mdship/option"
)

// ImageSyntax renders an image reference. The title attribute is emitted
// whenever title is present, even if it is empty.
func ImageSyntax(alt, url string, title option.Option[string]) string {
	if title.IsNone() {
		return fmt.Sprintf("![%s](%s)", alt, url)
	}

	return fmt.Sprintf("![%s](%s \"%s\")", alt, url, title.Get())
}

// Splice replaces the span of occ in body with replacement. The offset of occ
// must still be valid for body, i.e. nothing left of it was changed.
func Splice(body string, occ Occurrence, replacement string) string {
	return body[:occ.Offset] + replacement + body[occ.End():]
}

// ResolveFunc returns the URL a local occurrence is rewritten to. ok=false
// leaves the occurrence untouched; an error stops the rewrite.
type ResolveFunc func(occ Occurrence) (url string, ok bool, err error)

// RewriteFunc visits the local occurrences from last to first and splices each
// one right after resolve returned its URL, so offsets of the occurrences still
// to be visited stay valid. Remote occurrences are never passed to resolve. On
// error the body rewritten so far is returned with it.
func RewriteFunc(body string, occurrences []Occurrence, resolve ResolveFunc) (string, error) {
	for i := len(occurrences) - 1; i >= 0; i-- {
		occ := occurrences[i]
		if occ.IsRemote() {
			continue
		}

		url, ok, err := resolve(occ)
		if err != nil {
			return body, err
		}
		if !ok {
			continue
		}

		body = Splice(body, occ, ImageSyntax(occ.Alt, url, occ.Title))
	}

	return body, nil
}

// Rewrite is RewriteFunc over URLs already known, keyed by image path.
// Occurrences without an entry in urls are left untouched.
func Rewrite(body string, occurrences []Occurrence, urls map[string]string) string {
	body, _ = RewriteFunc(body, occurrences, func(occ Occurrence) (string, bool, error) {
		url, ok := urls[occ.Path]
		return url, ok, nil
	})

	return body
}
