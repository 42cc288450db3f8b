package recommend

import (
	"sort"
	"strings"

	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/bookserve/bookserve/pkg/index"
	"github.com/charmbracelet/log"
)

// Engine owns the dataset and the trie built over it. Both are immutable
// after NewEngine returns, so a single Engine can serve concurrent readers
// without locking.
type Engine struct {
	dataset *catalog.Dataset
	trie    *index.Trie
	filters *catalog.FilterIndex
}

// NewEngine indexes the dataset and returns an engine ready for queries.
func NewEngine(d *catalog.Dataset) *Engine {
	return &Engine{
		dataset: d,
		trie:    index.Build(d),
		filters: catalog.NewFilterIndex(d),
	}
}

// Recommend resolves candidates for the query prefix, filters them, and sorts
// by rating descending.
//
// An empty or whitespace-only query bypasses the trie: candidates are all
// records in dataset order. A populated query is lowercased and matched as a
// token prefix, with duplicates preserved — a record carrying two tokens
// under the prefix appears twice in the result.
func (e *Engine) Recommend(query, author, genre string, minRating float64) []catalog.Book {
	var candidates []int
	if strings.TrimSpace(query) == "" {
		candidates = make([]int, e.dataset.Len())
		for i := range candidates {
			candidates[i] = i
		}
	} else {
		candidates = e.trie.Search(strings.ToLower(query))
	}

	// Filter pass keeps candidate order; the sort below is stable, so ties
	// keep this relative order.
	var matched []catalog.Book
	for _, id := range candidates {
		book := e.dataset.Book(id)
		if author != FilterAll && book.Authors != author {
			continue
		}
		if genre != FilterAll && book.Genre != genre {
			continue
		}
		if book.AverageRating < minRating {
			continue
		}
		matched = append(matched, book)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AverageRating > matched[j].AverageRating
	})

	log.Debugf("Query %q matched %d of %d candidates", query, len(matched), len(candidates))
	return matched
}

// Authors lists the distinct author filter values, sorted.
func (e *Engine) Authors() []string {
	return e.dataset.Authors()
}

// Genres lists the distinct genre filter values, sorted.
func (e *Engine) Genres() []string {
	return e.dataset.Genres()
}

// CompleteAuthors returns the author filter values starting with prefix,
// for narrowing a filter picker as the user types.
func (e *Engine) CompleteAuthors(prefix string) []string {
	return e.filters.CompleteAuthors(prefix)
}

// CompleteGenres returns the genre filter values starting with prefix.
func (e *Engine) CompleteGenres(prefix string) []string {
	return e.filters.CompleteGenres(prefix)
}

// Size reports how many records the engine serves.
func (e *Engine) Size() int {
	return e.dataset.Len()
}
