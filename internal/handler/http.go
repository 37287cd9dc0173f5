package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/supplyhub/yml-feed-parser/internal/fetcher"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/pkg/v1/commander"
)

//go:generate mockery --name Previewer --filename previewer.go
//go:generate mockery --name Commander --filename commander.go

// Previewer fetches and projects feeds into preview trees without persisting anything.
type Previewer interface {
	Preview(ctx context.Context, feedURL string) (*models.PreviewNode, *models.PreviewStats, error)
}

// Commander enqueues parse commands.
type Commander interface {
	SendParseCommand(ctx context.Context, cmd commander.ParseCommand) error
}

// HTTPHandler serves the feed preview and parse endpoints.
type HTTPHandler struct {
	previewer Previewer
	commander Commander
	logger    *zerolog.Logger
}

// NewHTTPHandler returns new HTTPHandler.
func NewHTTPHandler(previewer Previewer, commander Commander, logger *zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		previewer: previewer,
		commander: commander,
		logger:    logger,
	}
}

// Router returns the http routes of the handler.
func (h *HTTPHandler) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/v1/preview", h.handlePreview)
	router.Post("/v1/parse", h.handleParse)

	return router
}

type previewRequest struct {
	URL string `json:"url"`
}

type previewResponse struct {
	Success bool                 `json:"success"`
	Tree    *models.PreviewNode  `json:"tree"`
	Stats   *models.PreviewStats `json:"stats"`
}

type parseResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileType string `json:"fileType,omitempty"`
}

func (h *HTTPHandler) handlePreview(wrt http.ResponseWriter, req *http.Request) {
	var preview previewRequest
	if err := json.NewDecoder(req.Body).Decode(&preview); err != nil {
		h.writeError(wrt, http.StatusBadRequest, "can't decode request body", "")
		return
	}

	if preview.URL == "" {
		h.writeError(wrt, http.StatusBadRequest, "url is required", "")
		return
	}

	tree, stats, err := h.previewer.Preview(req.Context(), preview.URL)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("feedUrl", preview.URL).
			Msg("can't build feed preview")
		h.writeError(wrt, http.StatusUnprocessableEntity, err.Error(), string(fetcher.ResolveFormat(preview.URL)))
		return
	}

	h.writeJSON(wrt, http.StatusOK, previewResponse{
		Success: true,
		Tree:    tree,
		Stats:   stats,
	})
}

func (h *HTTPHandler) handleParse(wrt http.ResponseWriter, req *http.Request) {
	var cmd commander.ParseCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		h.writeError(wrt, http.StatusBadRequest, "can't decode request body", "")
		return
	}

	if cmd.FeedURL == "" {
		h.writeError(wrt, http.StatusBadRequest, "feedUrl is required", "")
		return
	}

	if err := h.commander.SendParseCommand(req.Context(), cmd); err != nil {
		h.logger.Error().
			Err(err).
			Str("feedUrl", cmd.FeedURL).
			Msg("can't enqueue parse command")
		h.writeError(wrt, http.StatusInternalServerError, "can't enqueue parse command", "")
		return
	}

	h.writeJSON(wrt, http.StatusAccepted, parseResponse{Success: true})
}

func (h *HTTPHandler) writeError(wrt http.ResponseWriter, status int, message, fileType string) {
	h.writeJSON(wrt, status, errorResponse{
		Message:  message,
		FileType: fileType,
	})
}

func (h *HTTPHandler) writeJSON(wrt http.ResponseWriter, status int, body any) {
	wrt.Header().Set("Content-Type", "application/json")
	wrt.WriteHeader(status)
	if err := json.NewEncoder(wrt).Encode(body); err != nil {
		h.logger.Error().
			Err(err).
			Msg("can't encode response body")
	}
}
