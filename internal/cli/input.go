// Package cli handles cmd line input and recommendations for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bookserve/bookserve/internal/logger"
	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/bookserve/bookserve/pkg/recommend"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var titleStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

// out prints results to stdout; diagnostics go through the global stderr log.
var out = logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

// InputHandler processes user queries from stdin, printing matching books.
// Author, genre and rating filters are fixed for the session via flags; each
// line read is one query prefix.
type InputHandler struct {
	engine       recommend.IRecommender
	author       string
	genre        string
	minRating    float64
	resultLimit  int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine recommend.IRecommender, author, genre string, minRating float64, limit int) *InputHandler {
	return &InputHandler{
		engine:      engine,
		author:      author,
		genre:       genre,
		minRating:   minRating,
		resultLimit: limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleQuery() for processing.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("BookServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a keyword and press Enter to see matching books (Ctrl+C to exit):")

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery runs one query through the engine and prints the results.
func (h *InputHandler) handleQuery(query string) {
	h.requestCount++

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	books := h.engine.Recommend(query, h.author, h.genre, h.minRating)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(books) == 0 {
		log.Warnf("No books matched query: '%s'", query)
		return
	}

	if h.resultLimit > 0 && len(books) > h.resultLimit {
		books = books[:h.resultLimit]
	}

	out.Printf("Found %d books for query '%s':", len(books), query)
	for i, b := range books {
		h.printBook(i+1, b)
	}
}

func (h *InputHandler) printBook(rank int, b catalog.Book) {
	title := titleStyle.Render(b.Title)
	out.Printf("%2d. %-50s %s / %s (rating: %.2f)", rank, title, b.Authors, b.Genre, b.AverageRating)
}

// PrintFilters shows the available filter vocabularies, handy when deciding
// what to pass for -author and -genre.
func PrintFilters(engine recommend.IRecommender) {
	out.Printf("Authors: %s", strings.Join(engine.Authors(), ", "))
	out.Printf("Genres: %s", strings.Join(engine.Genres(), ", "))
	fmt.Println()
}
