package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Column names the loader requires in the header row. Order here is the
// order missing columns are reported in.
var requiredColumns = []string{"title", "authors", "genre", "average_rating"}

const imageColumn = "image_url"

// Load reads a catalog CSV into a Dataset. The first row is the header;
// column order is free. Parsing is lenient about quoting and ragged rows
// since book dumps are rarely strict CSV. Returns *SchemaError when any
// required column is absent.
func Load(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	return Parse(content)
}

// Parse builds a Dataset from raw CSV bytes. Split out from Load so tests
// and embedded catalogs can skip the filesystem.
func Parse(content []byte) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file is empty")
	}

	columns := headerIndex(rows[0])
	if err := checkSchema(columns); err != nil {
		return nil, err
	}

	books := make([]Book, 0, len(rows)-1)
	for i, row := range rows[1:] {
		book, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+2, err)
		}
		books = append(books, book)
	}

	log.Debugf("Loaded %d catalog records", len(books))
	return &Dataset{books: books}, nil
}

// headerIndex maps normalized column names to their positions.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

// checkSchema collects every missing required column into one SchemaError.
func checkSchema(columns map[string]int) error {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func parseRow(row []string, columns map[string]int) (Book, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ratingStr := cell("average_rating")
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil {
		return Book{}, fmt.Errorf("bad average_rating %q: %w", ratingStr, err)
	}

	return Book{
		Title:         cell("title"),
		Authors:       cell("authors"),
		Genre:         cell("genre"),
		AverageRating: rating,
		ImageURL:      cell(imageColumn),
	}, nil
}
