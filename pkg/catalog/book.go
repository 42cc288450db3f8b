// Package catalog loads the book dataset and exposes the filter vocabularies
// derived from it. The core never reads files itself; everything downstream
// consumes the Dataset built here.
package catalog

import (
	"fmt"
	"strings"
)

// Book is one catalog entry. Title, Authors and Genre feed the index;
// AverageRating drives filtering and ordering. ImageURL is a passthrough
// presentation field and never inspected by the core.
type Book struct {
	Title         string
	Authors       string
	Genre         string
	AverageRating float64
	ImageURL      string
}

// SearchableText joins the indexed fields with single spaces. The indexer
// lowercases and whitespace-splits this string into tokens.
func (b Book) SearchableText() string {
	return b.Title + " " + b.Authors + " " + b.Genre
}

// Dataset is the loaded catalog. Books keep their file order; a book's
// position in the slice is its stable identifier everywhere else in the
// system. Immutable after Load returns.
type Dataset struct {
	books []Book
}

// NewDataset wraps an already materialized record list. Load is the normal
// entry point; this exists for tests and embedded catalogs.
func NewDataset(books []Book) *Dataset {
	return &Dataset{books: books}
}

// Books returns the records in dataset order.
func (d *Dataset) Books() []Book {
	return d.books
}

// Len reports the number of records.
func (d *Dataset) Len() int {
	return len(d.books)
}

// Book resolves an identifier to its record.
func (d *Dataset) Book(id int) Book {
	return d.books[id]
}

// SchemaError reports required columns missing from the catalog file. All
// missing columns are collected into one error so the caller sees the whole
// problem at once; indexing must not start when Load returns this.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog file is missing required columns: %s", strings.Join(e.Missing, ", "))
}
