package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dgallion1/finsift/internal/source"
)

type extractURLRequest struct {
	URL string `json:"url"`
}

// handleExtract runs the pipeline synchronously over an uploaded document or
// a URL and returns the consolidated record.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	text, err := s.documentText(w, r)
	if err != nil {
		var unsupported *source.ErrUnsupportedInput
		switch {
		case errors.As(err, &unsupported):
			jsonError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, errBadRequest):
			jsonError(w, err.Error(), http.StatusBadRequest)
		default:
			s.log.Error("source fetch failed", "error", err)
			jsonError(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	result, err := s.runner.Run(r.Context(), text)
	if err != nil {
		s.log.Error("extraction failed", "error", err)
		jsonError(w, "extraction failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

var errBadRequest = errors.New("bad request")

// documentText resolves the request body to raw document text. Multipart
// uploads carry the document itself; a JSON body names a URL to fetch.
func (s *Server) documentText(w http.ResponseWriter, r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return "", fmt.Errorf("%w: invalid multipart form: %s", errBadRequest, err)
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			return "", fmt.Errorf("%w: file is required: %s", errBadRequest, err)
		}
		defer file.Close()

		kind, err := source.Detect(header.Filename)
		if err != nil {
			return "", err
		}

		data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			return "", fmt.Errorf("%w: file exceeds max size (%d bytes)", errBadRequest, s.cfg.MaxUploadBytes)
		}

		if kind == source.KindPDF {
			return (&source.PDFSource{}).TextFromBytes(r.Context(), data)
		}
		return source.NewHTMLSource(s.cfg.FetchTimeout).FromReader(bytes.NewReader(data))
	}

	var req extractURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", fmt.Errorf("%w: invalid json body: %s", errBadRequest, err)
	}
	if req.URL == "" {
		return "", fmt.Errorf("%w: url is required", errBadRequest)
	}

	src, kind, err := source.For(req.URL, s.cfg.FetchTimeout)
	if err != nil {
		return "", err
	}
	s.log.Info("fetching document", "url", req.URL, "kind", kind)
	return src.Text(r.Context(), req.URL)
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.stats.Snapshot()); err != nil {
		s.log.Error("encode stats", "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
