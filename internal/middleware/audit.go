package middleware

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/audit"
)

// AuditContext records the client address for action log entries. Mount it
// after chi's RealIP so proxies are honored.
func AuditContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithClientIP(r.Context(), r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
