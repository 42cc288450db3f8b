// Package recommend runs the query pipeline: trie lookup, filter pass, and
// rating sort over the loaded catalog.
package recommend

import "github.com/bookserve/bookserve/pkg/catalog"

// FilterAll is the pass-through sentinel for the author and genre filters.
// It never matches literally: a record whose genre is the string "All" is
// still only reachable through the sentinel, not by filtering for it.
const FilterAll = "All"

// IRecommender defines the query surface the server and CLI consume.
type IRecommender interface {
	// Recommend returns the records matching the query prefix and filters,
	// sorted by rating descending.
	Recommend(query, author, genre string, minRating float64) []catalog.Book

	// Authors returns the distinct author values for filter controls.
	Authors() []string

	// Genres returns the distinct genre values for filter controls.
	Genres() []string

	// CompleteAuthors returns the author values starting with prefix.
	CompleteAuthors(prefix string) []string

	// CompleteGenres returns the genre values starting with prefix.
	CompleteGenres(prefix string) []string
}
