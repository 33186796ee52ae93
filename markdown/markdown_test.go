package markdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgraf/mdship/option"
)

func TestScanNoMatches(t *testing.T) {
	assert.Empty(t, Scan("# Title\n\nJust [a link](x.png) and text.\n"))
	assert.Empty(t, Scan(""))
}

func TestScanFields(t *testing.T) {
	body := "intro ![a](./img/x.png) mid ![b](  ./y.gif   \"hover\") end ![c](https://example.com/z.png)"

	occs := Scan(body)
	require.Len(t, occs, 3)

	assert.Equal(t, 6, occs[0].Offset)
	assert.Equal(t, "![a](./img/x.png)", occs[0].Text)
	assert.Equal(t, "a", occs[0].Alt)
	assert.Equal(t, "./img/x.png", occs[0].Path)
	assert.True(t, occs[0].Title.IsNone())
	assert.False(t, occs[0].IsRemote())

	assert.Equal(t, "b", occs[1].Alt)
	assert.Equal(t, "./y.gif", occs[1].Path)
	assert.Equal(t, "hover", occs[1].Title.Get())
	assert.Equal(t, `![b](  ./y.gif   "hover")`, occs[1].Text)

	assert.Equal(t, "https://example.com/z.png", occs[2].Path)
	assert.True(t, occs[2].IsRemote())

	for _, occ := range occs {
		assert.Equal(t, occ.Text, body[occ.Offset:occ.End()])
	}
}

func TestScanEmptyTitleIsPresent(t *testing.T) {
	occs := Scan(`![a](x.png "")`)
	require.Len(t, occs, 1)
	assert.True(t, occs[0].Title.IsSome())
	assert.Equal(t, "", occs[0].Title.Get())
}

func TestScanAdjacentMatches(t *testing.T) {
	occs := Scan("![a](x.png)![b](y.png)")
	require.Len(t, occs, 2)
	assert.Equal(t, 0, occs[0].Offset)
	assert.Equal(t, 11, occs[1].Offset)
	assert.Equal(t, "y.png", occs[1].Path)
}

func TestImageSyntax(t *testing.T) {
	assert.Equal(t, "![a](u)", ImageSyntax("a", "u", option.None[string]()))
	assert.Equal(t, `![a](u "t")`, ImageSyntax("a", "u", option.Some("t")))
	assert.Equal(t, `![a](u "")`, ImageSyntax("a", "u", option.Some("")))
}

func TestRewriteNoMatchesIsIdentity(t *testing.T) {
	body := "no images here\n\n* list\n"
	assert.Equal(t, body, Rewrite(body, Scan(body), map[string]string{}))
}

func TestRewriteKeepsRemoteAndTitles(t *testing.T) {
	body := "A ![a](./x.png \"hover\") B ![r](http://example.com/r.png) C"
	urls := map[string]string{"./x.png": "https://cdn.example.com/assets/1000-x.png"}

	got := Rewrite(body, Scan(body), urls)
	assert.Equal(t, "A ![a](https://cdn.example.com/assets/1000-x.png \"hover\") B ![r](http://example.com/r.png) C", got)
}

func TestRewriteReverseOrderIsRequired(t *testing.T) {
	body := "x ![first](a.png) y ![second](b.png) z"
	occs := Scan(body)
	require.Len(t, occs, 2)

	urls := map[string]string{
		"a.png": "https://cdn.example.com/n/1-a.png",
		"b.png": "https://cdn.example.com/n/1-b.png",
	}
	want := "x ![first](https://cdn.example.com/n/1-a.png) y ![second](https://cdn.example.com/n/1-b.png) z"

	// Splicing each region independently into the original.
	independent := body[:occs[0].Offset] +
		ImageSyntax("first", urls["a.png"], occs[0].Title) +
		body[occs[0].End():occs[1].Offset] +
		ImageSyntax("second", urls["b.png"], occs[1].Title) +
		body[occs[1].End():]
	require.Equal(t, want, independent)

	assert.Equal(t, want, Rewrite(body, occs, urls))

	forward := body
	for _, occ := range occs {
		forward = Splice(forward, occ, ImageSyntax(occ.Alt, urls[occ.Path], occ.Title))
	}
	assert.NotEqual(t, want, forward)
}

func TestRewriteFuncVisitsLocalOccurrencesLastToFirst(t *testing.T) {
	body := "![a](a.png) ![r](https://x/r.png) ![b](b.png) ![c](c.png)"

	var visited []string
	got, err := RewriteFunc(body, Scan(body), func(occ Occurrence) (string, bool, error) {
		visited = append(visited, occ.Path)
		if occ.Path == "b.png" {
			return "", false, nil
		}
		return "https://cdn/" + occ.Path, true, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c.png", "b.png", "a.png"}, visited)
	assert.Equal(t, "![a](https://cdn/a.png) ![r](https://x/r.png) ![b](b.png) ![c](https://cdn/c.png)", got)
}

func TestRewriteFuncStopsAtError(t *testing.T) {
	body := "![a](a.svg) ![b](b.png)"
	boom := errors.New("boom")

	got, err := RewriteFunc(body, Scan(body), func(occ Occurrence) (string, bool, error) {
		if occ.Path == "a.svg" {
			return "", false, boom
		}
		return "https://cdn/b.png", true, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "![a](a.svg) ![b](https://cdn/b.png)", got)
}
