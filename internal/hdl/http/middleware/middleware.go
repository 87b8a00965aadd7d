package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/hdl"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
	metrics "github.com/JMURv/authcore/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Device captures the client IP and User-Agent for session bookkeeping.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), config.IpKey, r.RemoteAddr)
			ctx = context.WithValue(ctx, config.UaKey, r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// Auth resolves the session cookie to a user and stores the uid in the
// request context. Anything short of a valid session is a 401.
func Auth(app ctrl.AppCtrl, cookies utils.CookiePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := cookies.ReadSession(r)
				if token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrDecodeRequest)
					return
				}

				res := app.ValidateSession(r.Context(), token)
				if res == nil || res.User == nil {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrDecodeRequest)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, res.User.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
