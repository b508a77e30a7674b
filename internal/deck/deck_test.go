// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinnison/harvey/pkg/diag"
	"github.com/kinnison/harvey/pkg/types"
)

// writeDeck lays out a deck file and its slide files in a temp dir
// and returns the deck file path.
func writeDeck(t *testing.T, deckYAML string, slideFiles map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(deckYAML), 0o644))
	for name, content := range slideFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return path
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not a mapping", "- just\n- a\n- list\n"},
		{"no slides key", "styles: [a.css]\n"},
		{"empty slides", "slides: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDeck(t, tt.yaml, nil)
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, diag.CodeDeckFile, diag.CodeOf(err))
		})
	}
}

func TestBuildMinimalDeck(t *testing.T) {
	path := writeDeck(t, "slides:\n  - deck.md\n", map[string]string{
		"deck.md": "---\ntemplate: title-page\n\n# Hi\n\n???\n\nNotes.\n",
	})

	d, err := Build(path)
	require.NoError(t, err)
	require.Len(t, d.Slides, 1)

	s := d.Slides[0]
	assert.Equal(t, "title-page", s.Template)
	assert.Equal(t, "# Hi", s.Metadata["harvey-content"])
	assert.Equal(t, "Notes.", s.Notes)
	assert.Equal(t, types.DefaultMeta(), s.Meta)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, "deck.md", s.File)

	// Omitted deck-file lists fall back to the built-in defaults.
	assert.Equal(t, []string{"harvey.css"}, d.Styles)
	assert.Equal(t, []string{"harvey.js"}, d.Scripts)
}

func TestBuildMergesDeckDefaults(t *testing.T) {
	deckYAML := `
meta:
  default-template: my-slide
  require: [title]
styles: [a.css, default, b.css]
scripts: [extra.js]
tree-sitter-highlight:
  default: true
  hl-keyword: fancy-keyword
slides:
  - deck.md
`
	path := writeDeck(t, deckYAML, map[string]string{
		"deck.md": "---\ntitle: First\n\nbody\n",
	})

	d, err := Build(path)
	require.NoError(t, err)

	// The sentinel splices the built-in styles in place; scripts
	// without a sentinel replace the default outright.
	assert.Equal(t, []string{"a.css", "harvey.css", "b.css"}, d.Styles)
	assert.Equal(t, []string{"extra.js"}, d.Scripts)

	assert.Equal(t, "my-slide", d.BaseMeta.DefaultTemplate)
	require.Len(t, d.Slides, 1)
	assert.Equal(t, "my-slide", d.Slides[0].Template)

	hl, ok := d.GlobalContext["tree-sitter-highlight"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fancy-keyword", hl["hl-keyword"], "user entry wins")
	assert.Equal(t, "comment", hl["hl-comment"], "builtin entries merged under")
}

func TestBuildInheritanceCrossesFiles(t *testing.T) {
	deckYAML := "slides:\n  - one.md\n  - two.md\n"
	path := writeDeck(t, deckYAML, map[string]string{
		"one.md": "---\nmeta:\n  inherit: [meta, template, author]\nauthor: Daniel\n\nfirst\n",
		"two.md": "---\n\nsecond\n",
	})

	d, err := Build(path)
	require.NoError(t, err)
	require.Len(t, d.Slides, 2)
	assert.Equal(t, "Daniel", d.Slides[1].Metadata["author"])
	assert.Equal(t, 2, d.Slides[1].Index)
	assert.Equal(t, "two.md", d.Slides[1].File)
}

func TestBuildRequireFailureAborts(t *testing.T) {
	deckYAML := "meta:\n  require: [title]\nslides:\n  - deck.md\n"
	path := writeDeck(t, deckYAML, map[string]string{
		"deck.md": "---\ntitle: ok\n\none\n---\n\ntwo\n",
	})

	// Slide 2 has no title and title is not in the inherit set.
	_, err := Build(path)
	require.Error(t, err)
	assert.Equal(t, diag.CodeMissingRequiredKey, diag.CodeOf(err))
	e := err.(*diag.Error)
	assert.Equal(t, "deck.md", e.File)
	assert.Equal(t, 2, e.Slide)
	assert.Equal(t, "title", e.Key)
}

func TestGlobalContext(t *testing.T) {
	deckYAML := `
markdown:
  blockquote:
    note: bq-note
    warning: bq-warning
  code-block-prefix: "lang-"
context:
  speaker: Daniel
meta:
  ratio: 4:3
slides:
  - deck.md
`
	path := writeDeck(t, deckYAML, map[string]string{
		"deck.md": "---\n\nbody\n",
	})

	d, err := Build(path)
	require.NoError(t, err)

	assert.Equal(t, "4:3", d.GlobalContext["ratio"])
	assert.Equal(t, "Daniel", d.GlobalContext["speaker"])

	md, ok := d.GlobalContext["markdown"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "lang-", md["code-block-prefix"])
	bq, ok := md["blockquote"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bq-note", bq["note"])

	// The render context of a slide unions metadata over the global
	// context.
	ctx := d.Slides[0].RenderContext(d.GlobalContext)
	assert.Equal(t, "Daniel", ctx["speaker"])
	assert.Equal(t, "body", ctx["harvey-content"])
}

func TestLintCollectsAllErrors(t *testing.T) {
	deckYAML := "meta:\n  deny: [draft]\nslides:\n  - deck.md\n"
	path := writeDeck(t, deckYAML, map[string]string{
		"deck.md": "---\ndraft: true\n\none\n---\ntitle: ok\n\ntwo\n---\ndraft: true\n\nthree\n",
	})

	reports, errs := Lint(path)
	require.Len(t, errs, 2, "both draft slides must be reported")
	for _, e := range errs {
		assert.Equal(t, diag.CodeForbiddenKeyPresent, e.Code)
		assert.Equal(t, "draft", e.Key)
	}
	require.Len(t, reports, 1)
	assert.Equal(t, "deck.md", reports[0].File)
	assert.Equal(t, 2, reports[0].Slide)
	assert.Equal(t, "ok", reports[0].Metadata["title"])
}

func TestLintDeckLevelFailure(t *testing.T) {
	path := writeDeck(t, "styles: [a.css]\n", nil)
	reports, errs := Lint(path)
	assert.Empty(t, reports)
	require.Len(t, errs, 1)
	assert.Equal(t, diag.CodeDeckFile, errs[0].Code)
}
