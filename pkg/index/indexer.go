package index

import (
	"strings"

	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/charmbracelet/log"
)

// Build tokenizes every record of the dataset and inserts each token into a
// fresh Trie keyed by the record's position. Each record is processed exactly
// once, in dataset order; tokens are not deduplicated or stemmed, so a title
// repeating a word contributes that word twice.
func Build(d *catalog.Dataset) *Trie {
	trie := NewTrie()
	for id, book := range d.Books() {
		for _, token := range Tokenize(book.SearchableText()) {
			trie.Insert(token, id)
		}
	}
	log.Debugf("Indexed %d records into %d tokens", d.Len(), trie.Tokens())
	return trie
}

// Tokenize lowercases text and splits it on whitespace. Indexing and queries
// both go through this, which is what makes matching case-insensitive.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
