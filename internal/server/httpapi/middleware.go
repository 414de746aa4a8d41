package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const subjectContextKey contextKey = "subject"

func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authz := req.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}
		subject, err := r.tokens.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}
		ctx := context.WithValue(req.Context(), subjectContextKey, subject)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func getSubject(ctx context.Context) string {
	if v := ctx.Value(subjectContextKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
