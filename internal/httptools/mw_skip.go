package httptools

import (
	"net/http"
	"path"
)

func Skip(
	mw Middleware,
	forPaths ...string,
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipMatch(forPaths, r) {
				next.ServeHTTP(w, r)
				return
			}
			mw(next).ServeHTTP(w, r)
		})
	}
}

// skipMatch checks the escaped path as well, since an encoded "/" inside a
// single ServeMux wildcard segment decodes into an extra segment that "*"
// would not match.
func skipMatch(patterns []string, r *http.Request) bool {
	escaped := r.URL.EscapedPath()
	for _, p := range patterns {
		if ok, _ := path.Match(p, r.URL.Path); ok {
			return true
		}
		if ok, _ := path.Match(p, escaped); ok {
			return true
		}
	}
	return false
}
