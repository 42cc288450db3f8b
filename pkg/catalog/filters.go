package catalog

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Authors returns the distinct author values in the dataset, sorted.
// Used to populate the author filter control.
func (d *Dataset) Authors() []string {
	return d.distinct(func(b Book) string { return b.Authors })
}

// Genres returns the distinct genre values in the dataset, sorted.
func (d *Dataset) Genres() []string {
	return d.distinct(func(b Book) string { return b.Genre })
}

func (d *Dataset) distinct(field func(Book) string) []string {
	seen := make(map[string]struct{})
	for _, b := range d.books {
		seen[field(b)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// FilterIndex offers prefix completion over the filter vocabularies, so a
// sidebar can narrow its author or genre picker as the user types. Lookup is
// case-insensitive; completions come back in their original casing.
type FilterIndex struct {
	authors *patricia.Trie
	genres  *patricia.Trie
}

// NewFilterIndex builds the completion tries from the dataset vocabularies.
func NewFilterIndex(d *Dataset) *FilterIndex {
	return &FilterIndex{
		authors: valueTrie(d.Authors()),
		genres:  valueTrie(d.Genres()),
	}
}

// valueTrie keys each value by its lowercase form. Distinct values that fold
// to the same key ("Sci-Fi" and "SCI-FI") share one slice instead of the
// later insert being silently dropped.
func valueTrie(values []string) *patricia.Trie {
	trie := patricia.NewTrie()
	for _, v := range values {
		key := patricia.Prefix(strings.ToLower(v))
		if existing := trie.Get(key); existing != nil {
			trie.Set(key, append(existing.([]string), v))
			continue
		}
		trie.Insert(key, []string{v})
	}
	return trie
}

// CompleteAuthors returns the author values starting with prefix, sorted.
func (fi *FilterIndex) CompleteAuthors(prefix string) []string {
	return completeValues(fi.authors, prefix)
}

// CompleteGenres returns the genre values starting with prefix, sorted.
func (fi *FilterIndex) CompleteGenres(prefix string) []string {
	return completeValues(fi.genres, prefix)
}

func completeValues(trie *patricia.Trie, prefix string) []string {
	var values []string
	_ = trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		values = append(values, item.([]string)...)
		return nil
	})
	sort.Strings(values)
	return values
}
