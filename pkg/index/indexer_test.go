package index

import (
	"testing"

	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func testDataset() *catalog.Dataset {
	return catalog.NewDataset([]catalog.Book{
		{Title: "Dune", Authors: "Frank Herbert", Genre: "Sci-Fi", AverageRating: 4.2},
		{Title: "Dune Messiah", Authors: "Frank Herbert", Genre: "Sci-Fi", AverageRating: 3.8},
		{Title: "Emma", Authors: "Jane Austen", Genre: "Romance", AverageRating: 4.5},
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases", "Dune Messiah", []string{"dune", "messiah"}},
		{"collapses whitespace", "  Emma   Jane\tAusten ", []string{"emma", "jane", "austen"}},
		{"empty input", "", nil},
		{"whitespace only", "   \t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestBuildIndexesEveryField(t *testing.T) {
	trie := Build(testDataset())

	// Title, author and genre tokens all resolve to the record.
	assert.Contains(t, trie.Search("dune"), 0)
	assert.Contains(t, trie.Search("herbert"), 0)
	assert.Contains(t, trie.Search("sci-fi"), 0)
	assert.Contains(t, trie.Search("austen"), 2)
}

func TestBuildUsesDatasetPositionsAsIDs(t *testing.T) {
	trie := Build(testDataset())

	assert.ElementsMatch(t, []int{0, 1}, trie.Search("dune"))
	assert.Equal(t, []int{2}, trie.Search("emma"))
}

func TestBuildIsCaseInsensitive(t *testing.T) {
	trie := Build(testDataset())

	// Queries are lowercased by the caller; the index itself only ever
	// holds lowercase tokens.
	assert.NotEmpty(t, trie.Search("frank"))
	assert.Empty(t, trie.Search("Frank"))
}

func TestBuildSharedPrefixAcrossRecords(t *testing.T) {
	trie := Build(testDataset())

	// "herbert" appears in two records; both ids come back.
	got := trie.Search("herb")
	assert.ElementsMatch(t, []int{0, 1}, got)
}
