package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tdt-studio/portfolio-tracker/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_email).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			// Auth runs inside this middleware, so the identity is published
			// back through the request holder.
			holder := &identityHolder{}
			next.ServeHTTP(sw, r.WithContext(withIdentityHolder(r.Context(), holder)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if holder.email != "" {
				attrs = append(attrs, slog.String("user_email", holder.email))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

type holderKey struct{}

// identityHolder carries the caller's email from Auth back out to Logger.
type identityHolder struct {
	email string
}

func withIdentityHolder(ctx context.Context, h *identityHolder) context.Context {
	if id, ok := ctxutil.IdentityFromCtx(ctx); ok {
		h.email = id.Email
	}
	return context.WithValue(ctx, holderKey{}, h)
}

func recordIdentity(ctx context.Context, email string) {
	if h, ok := ctx.Value(holderKey{}).(*identityHolder); ok {
		h.email = email
	}
}
