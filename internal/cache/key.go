package cache

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RequestKey derives the cache key for r: its path and canonical query.
func RequestKey(r *http.Request) string {
	return Key(r.URL.Path, r.URL.Query())
}

// Key builds a cache key from a path and query parameters.
//
// Parameter names are sorted and every value is trimmed and NFC-normalized,
// so "?page=1&query=dune" and "?query=dune%20&page=1" share an entry.
// Repeated values keep their arrival order.
func Key(path string, query url.Values) string {
	canon := make(url.Values, len(query))
	for name, values := range query {
		name = norm.NFC.String(name)
		for _, v := range values {
			canon[name] = append(canon[name], norm.NFC.String(strings.TrimSpace(v)))
		}
	}
	return path + ":" + canon.Encode()
}
