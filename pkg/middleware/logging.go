package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// RequestIDHeader é aceito na entrada e devolvido na resposta para rastrear a requisição
const RequestIDHeader = "X-Request-ID"

// slowRequest marca comparações e sincronizações que merecem atenção no log
const slowRequest = 2 * time.Second

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// LoggingMiddleware propaga o id de correlação e registra uma linha por requisição concluída
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, requestID := log.WithCorrelationID(r.Context(), r.Header.Get(RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, requestID)

			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			logger := log.ForContext(r.Context()).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"status_code": rec.statusCode,
				"bytes":       rec.bytes,
				"duration_ms": elapsed.Milliseconds(),
			})
			if elapsed > slowRequest {
				logger = logger.WithField("slow", true)
			}

			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error("requisição finalizada com erro")
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn("requisição recusada")
			default:
				logger.Info("requisição finalizada")
			}
		})
	}
}

// LogPanicMiddleware transforma um panic do handler em 500 no formato padrão de erro
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"panic":       recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(debug.Stack()),
				}).Error("panic ao processar requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
