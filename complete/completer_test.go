package complete

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relstor/ptk/document"
)

func docAt(text string, cursor int) *document.Document {
	return document.New(text, cursor)
}

func TestWordCompleterPrefixMatch(t *testing.T) {
	t.Parallel()
	c := NewWordCompleter("select", "selection", "server", "show")
	doc := docAt("se", 2)

	got := c.Complete(doc)
	require.Len(t, got, 3)
	require.Equal(t, "select", got[0].Text)
	require.Equal(t, -2, got[0].StartPosition)
	require.Equal(t, "selection", got[1].Text)
}

func TestWordCompleterSmartCase(t *testing.T) {
	t.Parallel()
	c := NewWordCompleter("Select", "select")
	doc := docAt("Se", 2)

	got := c.Complete(doc)
	require.Len(t, got, 1)
	require.Equal(t, "Select", got[0].Text)
}

func TestWordCompleterEmptyQueryYieldsNothing(t *testing.T) {
	t.Parallel()
	c := NewWordCompleter("select")
	doc := docAt("", 0)
	require.Empty(t, c.Complete(doc))
}

func TestFuzzyCompleterSubsequenceMatch(t *testing.T) {
	t.Parallel()
	c := NewFuzzyCompleter("select", "server", "reset")
	doc := docAt("se", 2)

	got := c.Complete(doc)
	var texts []string
	for _, comp := range got {
		texts = append(texts, comp.Text)
	}
	require.Contains(t, texts, "select")
	require.Contains(t, texts, "server")
	require.Contains(t, texts, "reset")
}

func TestFuzzyCompleterRanksTighterSpanFirst(t *testing.T) {
	t.Parallel()
	// "sl" matches "slow" on two adjacent bytes ("s" at 0, "l" at 1) and
	// "s-l-o-w-long-tail" over a wider span ("s" at 0, "l" at 2), so
	// "slow" ranks first.
	c := NewFuzzyCompleter("slow", "s-l-o-w-long-tail")
	doc := docAt("sl", 2)

	got := c.Complete(doc)
	require.Len(t, got, 2)
	require.Equal(t, "slow", got[0].Text)
}

func TestFuzzyCompleterNoMatch(t *testing.T) {
	t.Parallel()
	c := NewFuzzyCompleter("select")
	doc := docAt("xyz", 3)
	require.Empty(t, c.Complete(doc))
}

func TestCompleterSetRotation(t *testing.T) {
	t.Parallel()
	set := NewCompleterSet()
	set.Add("word", NewWordCompleter("select"))
	set.Add("fuzzy", NewFuzzyCompleter("select"))

	name, ok := set.CurrentName()
	require.True(t, ok)
	require.Equal(t, "word", name)

	set.Rotate()
	name, ok = set.CurrentName()
	require.True(t, ok)
	require.Equal(t, "fuzzy", name)

	set.Rotate()
	name, _ = set.CurrentName()
	require.Equal(t, "word", name)
}

func TestCompleterSetSetCurrentByName(t *testing.T) {
	t.Parallel()
	set := NewCompleterSet()
	set.Add("word", NewWordCompleter("select"))
	set.Add("fuzzy", NewFuzzyCompleter("select"))

	require.NoError(t, set.SetCurrentByName("fuzzy"))
	name, _ := set.CurrentName()
	require.Equal(t, "fuzzy", name)

	require.ErrorIs(t, set.SetCurrentByName("missing"), ErrCompleterNotFound)
}
