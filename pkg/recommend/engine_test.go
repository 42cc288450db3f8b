package recommend

import (
	"testing"

	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return NewEngine(catalog.NewDataset([]catalog.Book{
		{Title: "Dune", Authors: "Herbert", Genre: "Sci-Fi", AverageRating: 4.2},
		{Title: "Dune Messiah", Authors: "Herbert", Genre: "Sci-Fi", AverageRating: 3.8},
		{Title: "Emma", Authors: "Austen", Genre: "Romance", AverageRating: 4.5},
	}))
}

func titles(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestRecommendPrefixQuery(t *testing.T) {
	got := testEngine().Recommend("dune", "All", "All", 1)

	// Both Dune records, higher rating first.
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, titles(got))
}

func TestRecommendEmptyQueryUsesWholeCatalog(t *testing.T) {
	got := testEngine().Recommend("", "All", "All", 4)

	assert.Equal(t, []string{"Emma", "Dune"}, titles(got))
}

func TestRecommendWhitespaceQueryIsEmptyQuery(t *testing.T) {
	e := testEngine()
	assert.Equal(t, titles(e.Recommend("", "All", "All", 1)), titles(e.Recommend("   \t ", "All", "All", 1)))
}

func TestRecommendNoMatchIsEmptyNotError(t *testing.T) {
	got := testEngine().Recommend("zzz", "All", "All", 1)
	assert.Empty(t, got)
}

func TestRecommendIsCaseInsensitive(t *testing.T) {
	e := testEngine()
	assert.Equal(t, titles(e.Recommend("dune", "All", "All", 1)), titles(e.Recommend("DuNe", "All", "All", 1)))
}

func TestRecommendAuthorFilter(t *testing.T) {
	got := testEngine().Recommend("", "Austen", "All", 1)
	assert.Equal(t, []string{"Emma"}, titles(got))
}

func TestRecommendGenreFilter(t *testing.T) {
	got := testEngine().Recommend("", "All", "Sci-Fi", 1)
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, titles(got))
}

func TestRecommendMinRating(t *testing.T) {
	got := testEngine().Recommend("dune", "All", "All", 4.0)
	assert.Equal(t, []string{"Dune"}, titles(got))
}

func TestRecommendRatingBoundaryIsInclusive(t *testing.T) {
	got := testEngine().Recommend("dune", "All", "All", 3.8)
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, titles(got))
}

func TestFilterAllIsSentinelNotLiteral(t *testing.T) {
	e := NewEngine(catalog.NewDataset([]catalog.Book{
		{Title: "Oddity", Authors: "All", Genre: "All", AverageRating: 2.0},
		{Title: "Plain", Authors: "Someone", Genre: "Drama", AverageRating: 3.0},
	}))

	// The sentinel passes every record, including one literally named "All".
	got := e.Recommend("", "All", "All", 1)
	assert.Len(t, got, 2)
}

func TestRecommendPreservesDuplicateCandidates(t *testing.T) {
	// "Dune Dunes" carries two tokens under the "dune" prefix, so the
	// record appears twice. Kept deliberately; see DESIGN.md.
	e := NewEngine(catalog.NewDataset([]catalog.Book{
		{Title: "Dune Dunes", Authors: "Herbert", Genre: "Sci-Fi", AverageRating: 4.0},
	}))

	got := e.Recommend("dune", "All", "All", 1)
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
}

func TestRecommendSortIsStableForEqualRatings(t *testing.T) {
	// Equal ratings keep candidate order, which for an empty query is
	// dataset order.
	e := NewEngine(catalog.NewDataset([]catalog.Book{
		{Title: "First", Authors: "A", Genre: "X", AverageRating: 3.0},
		{Title: "Second", Authors: "B", Genre: "X", AverageRating: 3.0},
		{Title: "Third", Authors: "C", Genre: "X", AverageRating: 3.0},
	}))

	got := e.Recommend("", "All", "All", 1)
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(got))
}

func TestRecommendSortedByRatingDescending(t *testing.T) {
	got := testEngine().Recommend("", "All", "All", 1)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].AverageRating, got[i].AverageRating)
	}
}

func TestEngineFilterAccessors(t *testing.T) {
	e := testEngine()
	assert.Equal(t, []string{"Austen", "Herbert"}, e.Authors())
	assert.Equal(t, []string{"Romance", "Sci-Fi"}, e.Genres())
	assert.Equal(t, 3, e.Size())
}

func TestEngineCompletesFilterValues(t *testing.T) {
	e := testEngine()
	assert.Equal(t, []string{"Herbert"}, e.CompleteAuthors("her"))
	assert.Equal(t, []string{"Romance"}, e.CompleteGenres("rom"))
	assert.Empty(t, e.CompleteAuthors("zz"))
}
