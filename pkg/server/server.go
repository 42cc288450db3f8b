package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bookserve/bookserve/pkg/config"
	"github.com/bookserve/bookserve/pkg/recommend"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// envelope is the superset of incoming message fields; dispatch is on the
// presence of Action, everything else is a recommendation request.
type envelope struct {
	ID        string  `msgpack:"id"`
	Query     string  `msgpack:"q"`
	Author    string  `msgpack:"a"`
	Genre     string  `msgpack:"g"`
	MinRating float64 `msgpack:"r"`
	Limit     int     `msgpack:"l"`
	Action    string  `msgpack:"action"`
	Prefix    string  `msgpack:"prefix"`
}

// Server handles the IPC for book recommendations
type Server struct {
	engine  recommend.IRecommender
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a recommendation server using stdin/stdout for IPC
func NewServer(engine recommend.IRecommender, cfg *config.Config) *Server {
	return &Server{
		engine:  engine,
		config:  cfg,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
	}
}

// NewServerWithIO builds a server over explicit streams, used by tests.
func NewServerWithIO(engine recommend.IRecommender, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting server")

	for {
		var req envelope
		if err := s.decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}

		if req.Action != "" {
			s.handleCatalog(CatalogRequest{ID: req.ID, Action: req.Action, Prefix: req.Prefix})
			continue
		}
		s.handleRecommend(RecommendRequest{
			ID:        req.ID,
			Query:     req.Query,
			Author:    req.Author,
			Genre:     req.Genre,
			MinRating: req.MinRating,
			Limit:     req.Limit,
		})
	}
}

// handleRecommend validates the request, runs the query pipeline and sends
// the matched books. Omitted filters fall back to the pass-through sentinel,
// an omitted limit to the configured maximum, and an omitted rating to the
// configured catalog floor.
func (s *Server) handleRecommend(req RecommendRequest) {
	if len(req.Query) > s.config.Server.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		log.Debug("Query too long in request", "id", req.ID)
		return
	}

	author := req.Author
	if author == "" {
		author = recommend.FilterAll
	}
	genre := req.Genre
	if genre == "" {
		genre = recommend.FilterAll
	}
	limit := req.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}
	minRating := req.MinRating
	if minRating <= 0 {
		minRating = s.config.Catalog.MinRating
	}

	start := time.Now()
	books := s.engine.Recommend(req.Query, author, genre, minRating)
	elapsed := time.Since(start)

	if len(books) > limit {
		books = books[:limit]
	}

	results := make([]BookResult, len(books))
	for i, b := range books {
		results[i] = BookResult{
			Title:    b.Title,
			Authors:  b.Authors,
			Genre:    b.Genre,
			Rating:   b.AverageRating,
			ImageURL: b.ImageURL,
		}
	}

	s.sendResponse(RecommendResponse{
		ID:        req.ID,
		Books:     results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleCatalog serves the filter vocabularies, filter-value completion and
// dataset info.
func (s *Server) handleCatalog(req CatalogRequest) {
	switch req.Action {
	case "complete_filters":
		s.sendResponse(CatalogResponse{
			ID:      req.ID,
			Status:  "ok",
			Authors: s.engine.CompleteAuthors(req.Prefix),
			Genres:  s.engine.CompleteGenres(req.Prefix),
		})
	case "get_filters":
		s.sendResponse(CatalogResponse{
			ID:      req.ID,
			Status:  "ok",
			Authors: s.engine.Authors(),
			Genres:  s.engine.Genres(),
		})
	case "get_info":
		count := 0
		if sized, ok := s.engine.(interface{ Size() int }); ok {
			count = sized.Size()
		}
		s.sendResponse(CatalogResponse{
			ID:     req.ID,
			Status: "ok",
			Count:  count,
		})
	default:
		s.sendResponse(CatalogResponse{
			ID:     req.ID,
			Status: "error",
			Error:  fmt.Sprintf("Unknown action: %s", req.Action),
		})
	}
}

// sendResponse encodes the given response and writes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(RecommendError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
