package maplib

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	DefaultUploadLimit    = 32 * 1024 * 1024
	DefaultRequestTimeout = 10 * time.Minute

	DefaultTileURL         = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// HandlerOpts configures a web UI. Mapper is mandatory, the rest is
// optional.
type HandlerOpts struct {
	Mapper          *Mapper
	Logger          Logger
	Metrics         *Metrics
	DefaultProvider ProviderName
	UploadLimit     int64
	RequestTimeout  time.Duration
	TileURL         string
	TileAttribution string
}

type httpHandler struct {
	mapper          *Mapper
	logger          Logger
	metrics         *Metrics
	defaultProvider ProviderName
	uploadLimit     int64
	tileURL         string
	tileAttribution string
}

func (h httpHandler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		elapsed := time.Since(started)
		route := req.URL.Path

		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.ObserveRequest(req.Method, route, status, elapsed)

		if h.logger != nil {
			h.logger.RequestServed(req, status, ww.BytesWritten(), elapsed)
		}
	})
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode())
	h.encodeJSON(w, e)
}

// NewHTTPHandler builds a web UI:
//
//	GET  /          sidebar form, viewer location
//	POST /map       multipart upload (provider, token, file), rendered map
//	POST /api/map   the same for JSON clients
//	GET  /stats     provider usage statistics
//	GET  /metrics   prometheus metrics, if Metrics is set
func NewHTTPHandler(opts HandlerOpts) http.Handler {
	handler := httpHandler{
		mapper:          opts.Mapper,
		logger:          opts.Logger,
		metrics:         opts.Metrics,
		defaultProvider: opts.DefaultProvider,
		uploadLimit:     opts.UploadLimit,
		tileURL:         opts.TileURL,
		tileAttribution: opts.TileAttribution,
	}

	if handler.defaultProvider == "" {
		handler.defaultProvider = ProviderIPAPI
	}

	if handler.uploadLimit <= 0 {
		handler.uploadLimit = DefaultUploadLimit
	}

	if handler.tileURL == "" {
		handler.tileURL = DefaultTileURL
		handler.tileAttribution = DefaultTileAttribution
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(handler.observe)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(timeout))

	router.Get("/", handler.handleIndex)
	router.Post("/map", handler.handleUpload)
	router.Post("/api/map", handler.handleAPI)
	router.Get("/stats", handler.handleStats)

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return router
}
