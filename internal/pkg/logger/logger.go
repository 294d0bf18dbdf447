// Package logger wraps Uber's Zap logger and provides HTTP middleware that
// logs every request served by the API.
package logger

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// Logger wraps zap.Logger so callers get both structured and sugared APIs.
type Logger struct {
	*zap.Logger
}

// CreateLogger builds a production Zap logger at the requested level.
func CreateLogger(level string) (*Logger, error) {
	fallback, err := zap.NewProduction()
	if err != nil {
		log.Println(err)
	}
	l := &Logger{Logger: fallback}
	defer l.Sync()

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return l, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return l, err
	}

	l.Logger = zl
	return l, nil
}

// WithLogging returns middleware that records method, path, status, duration
// and response size for each request.
func (l *Logger) WithLogging() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l.Info("served",
					zap.String("method", r.Method),
					zap.String("uri", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Duration("duration", time.Since(start)),
					zap.Int("size", ww.BytesWritten()))
			}()
			h.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
