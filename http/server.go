// Package http exposes the converter over HTTP. The endpoint mirrors
// the platform's convert-html contract: JSON, raw-HTML, and form bodies
// are all accepted.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/contentools/ricos"
	"github.com/go-chi/chi/v5"
)

// maxFormMemory bounds the in-memory portion of multipart bodies.
const maxFormMemory = 32 << 20

// Server serves the HTML conversion endpoint. Each request builds its
// own ImageContext, so concurrent requests never share mutable state.
type Server struct {
	converter ricos.Converter
	logger    *slog.Logger
	router    chi.Router
}

// NewServer creates a Server around the given converter.
func NewServer(converter ricos.Converter, logger *slog.Logger) *Server {
	s := &Server{
		converter: converter,
		logger:    logger,
		router:    chi.NewRouter(),
	}
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/convert-html", s.handleConvert)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "ricos"})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	nodes, err := s.converter.Convert(req.HTML, ricos.NewImageContext(req))
	if err != nil {
		s.logger.Error("conversion failed", "error", ricos.ErrorMessage(err))
		writeError(w, err)
		return
	}

	w.Header().Set("X-Content-Digest", ricos.ContentHash(req.HTML))
	writeJSON(w, http.StatusOK, &ricos.ConversionResult{Nodes: nodes})
}

// parseRequest extracts a ConversionRequest from the three accepted body
// encodings: JSON, a raw HTML document, or form fields with JSON-encoded
// map and queue values.
func parseRequest(r *http.Request) (*ricos.ConversionRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req ricos.ConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, ricos.Errorf(ricos.EINVALID, "invalid JSON body: %v", err)
		}
		return &req, nil
	}

	if strings.Contains(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, ricos.Errorf(ricos.EINVALID, "invalid multipart body: %v", err)
		}
		return requestFromForm(r.Form)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, ricos.Errorf(ricos.EINVALID, "failed to read request body: %v", err)
	}
	raw := strings.TrimSpace(string(body))
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "<html") || strings.HasPrefix(lower, "<!doctype") {
		return &ricos.ConversionRequest{HTML: raw}, nil
	}

	form, err := url.ParseQuery(raw)
	if err != nil {
		return nil, ricos.Errorf(ricos.EINVALID, "invalid form body: %v", err)
	}
	return requestFromForm(form)
}

// requestFromForm builds a ConversionRequest from form fields. The map
// and queue fields arrive JSON-encoded.
func requestFromForm(form url.Values) (*ricos.ConversionRequest, error) {
	req := &ricos.ConversionRequest{
		HTML:    form.Get("html"),
		BaseURL: form.Get("base_url"),
	}
	if v := form.Get("image_url_map"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.ImageURLMap); err != nil {
			return nil, ricos.Errorf(ricos.EINVALID, "invalid image_url_map: %v", err)
		}
	}
	if v := form.Get("images"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.ImagesFIFO); err != nil {
			return nil, ricos.Errorf(ricos.EINVALID, "invalid images: %v", err)
		}
	}
	return req, nil
}

func writeError(w http.ResponseWriter, err error) {
	code := ricos.ErrorCode(err)
	switch code {
	case ricos.EINVALID:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ricos.ErrorMessage(err)})
	case ricos.ENOTFOUND:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": ricos.ErrorMessage(err)})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "failed to convert HTML",
			"details": ricos.ErrorMessage(err),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
