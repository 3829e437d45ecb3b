package middleware

import (
	"net/http"

	"github.com/heartmarshall/gis-admissions-backend/pkg/ctxutil"
)

// RequireAdmin rejects anonymous callers with 401 and authenticated
// non-admins with 403. It must run after Auth.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
