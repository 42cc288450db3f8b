package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filtersDataset() *Dataset {
	return NewDataset([]Book{
		{Title: "Dune", Authors: "Frank Herbert", Genre: "Sci-Fi", AverageRating: 4.2},
		{Title: "Dune Messiah", Authors: "Frank Herbert", Genre: "Sci-Fi", AverageRating: 3.8},
		{Title: "Emma", Authors: "Jane Austen", Genre: "Romance", AverageRating: 4.5},
		{Title: "Hyperion", Authors: "Dan Simmons", Genre: "Sci-Fi", AverageRating: 4.3},
	})
}

func TestAuthorsAreSortedAndDistinct(t *testing.T) {
	assert.Equal(t, []string{"Dan Simmons", "Frank Herbert", "Jane Austen"}, filtersDataset().Authors())
}

func TestGenresAreSortedAndDistinct(t *testing.T) {
	assert.Equal(t, []string{"Romance", "Sci-Fi"}, filtersDataset().Genres())
}

func TestFilterIndexCompletesAuthors(t *testing.T) {
	fi := NewFilterIndex(filtersDataset())

	assert.Equal(t, []string{"Frank Herbert"}, fi.CompleteAuthors("fra"))
	assert.Empty(t, fi.CompleteAuthors("zz"))
}

func TestFilterIndexCompletionIsCaseInsensitive(t *testing.T) {
	fi := NewFilterIndex(filtersDataset())

	assert.Equal(t, fi.CompleteAuthors("jane"), fi.CompleteAuthors("Jane"))
	assert.Equal(t, []string{"Jane Austen"}, fi.CompleteAuthors("JANE"))
}

func TestFilterIndexKeepsCaseCollidingValues(t *testing.T) {
	// Two vocabulary values folding to the same lowercase key must both
	// survive indexing.
	fi := NewFilterIndex(NewDataset([]Book{
		{Title: "A", Authors: "X", Genre: "Sci-Fi", AverageRating: 4.0},
		{Title: "B", Authors: "Y", Genre: "SCI-FI", AverageRating: 3.0},
	}))

	assert.Equal(t, []string{"SCI-FI", "Sci-Fi"}, fi.CompleteGenres("sci"))
}

func TestFilterIndexCompletesGenres(t *testing.T) {
	fi := NewFilterIndex(filtersDataset())

	assert.Equal(t, []string{"Sci-Fi"}, fi.CompleteGenres("sci"))
	assert.Equal(t, []string{"Romance", "Sci-Fi"}, fi.CompleteGenres(""))
}
