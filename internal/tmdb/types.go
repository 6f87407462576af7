// Package tmdb provides a client for The Movie Database API.
package tmdb

// Object is a TMDB JSON object passed through unchanged.
// Numbers are kept as json.Number so they re-encode exactly.
type Object map[string]any

// Movie is the subset of a search result the relay reads.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"` // "2024-03-01"
	PosterPath   string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
}

// SearchPage is one page of /search/movie results.
type SearchPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Credits is the /movie/{id}/credits response.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

// CastMember is one billed cast entry.
type CastMember struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"` // null when TMDB has no photo
}

// TopCast returns at most n cast members in billing order.
func (c *Credits) TopCast(n int) []CastMember {
	if c == nil {
		return []CastMember{}
	}
	n = max(0, min(n, len(c.Cast)))
	top := make([]CastMember, n)
	copy(top, c.Cast[:n])
	return top
}
