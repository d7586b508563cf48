package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength caps client-supplied trace ids before they reach the logs.
const maxTraceIDLength = 64

// withTraceID attaches a child logger carrying "trace_id" to the request
// context and echoes the id in the response. A client-supplied X-Trace-ID is
// reused when it is short enough, otherwise a new uuid is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
