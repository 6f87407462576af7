package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/marquee/internal/tmdb"
)

const (
	castSize        = 5
	suggestionLimit = 10
)

// pathID extracts a positive integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput("Invalid " + name)
	}
	return id, nil
}

// queryPage reads the optional page parameter, defaulting to 1.
func queryPage(r *http.Request) (int, error) {
	val := strings.TrimSpace(r.URL.Query().Get("page"))
	if val == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(val)
	if err != nil || page < 1 {
		return 0, invalidInput("Invalid page")
	}
	return page, nil
}

func (s *Server) searchMovies(r *http.Request) (any, error) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("query"))
	genres := strings.TrimSpace(q.Get("with_genres"))
	if query == "" && genres == "" {
		return nil, invalidInput("Query parameter or genre filter is required")
	}

	page, err := queryPage(r)
	if err != nil {
		return nil, err
	}

	if genres != "" {
		return s.deps.Movies.DiscoverMovies(r.Context(), genres, page)
	}
	return s.deps.Movies.SearchMovies(r.Context(), query, page)
}

func (s *Server) genres(r *http.Request) (any, error) {
	return s.deps.Movies.Genres(r.Context())
}

func (s *Server) discoverByGenre(r *http.Request) (any, error) {
	genre, err := pathID(r, "genre")
	if err != nil {
		return nil, err
	}
	page, err := queryPage(r)
	if err != nil {
		return nil, err
	}
	return s.deps.Movies.DiscoverMovies(r.Context(), strconv.FormatInt(genre, 10), page)
}

func (s *Server) trending(r *http.Request) (any, error) {
	return s.deps.Movies.Trending(r.Context(), "day")
}

// movieDetails returns the movie with its top billed cast under "cast".
func (s *Server) movieDetails(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	movie, err := s.deps.Movies.Movie(r.Context(), id)
	if err != nil {
		return nil, err
	}
	credits, err := s.deps.Movies.Credits(r.Context(), id)
	if err != nil {
		return nil, err
	}

	if movie == nil {
		movie = tmdb.Object{}
	}
	movie["cast"] = credits.TopCast(castSize)
	return movie, nil
}

// movieRelated serves /api/movies/{id}/{sub}.
func (s *Server) movieRelated(r *http.Request) (any, error) {
	switch r.PathValue("sub") {
	case "recommendations":
		return s.recommendations(r)
	case "cast":
		return s.cast(r)
	}
	return nil, &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: "Not found"}
}

func (s *Server) recommendations(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	page, err := queryPage(r)
	if err != nil {
		return nil, err
	}
	return s.deps.Movies.Recommendations(r.Context(), id, page)
}

func (s *Server) cast(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	credits, err := s.deps.Movies.Credits(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return credits.TopCast(castSize), nil
}

// suggestions serves up to 10 distinct titles from the first search page.
// Titles are ordered by similarity to the query, not by TMDB's ranking;
// equally similar titles keep TMDB's order.
func (s *Server) suggestions(r *http.Request) (any, error) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		return nil, invalidInput("Query parameter is required")
	}

	page, err := s.deps.Movies.SearchTitles(r.Context(), query)
	if err != nil {
		return nil, err
	}

	results := page.Results
	if len(results) > suggestionLimit {
		results = results[:suggestionLimit]
	}
	titles := make([]string, 0, len(results))
	for _, m := range results {
		titles = append(titles, m.Title)
	}
	return rankSuggestions(query, titles), nil
}

