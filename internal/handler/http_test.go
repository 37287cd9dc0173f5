package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supplyhub/yml-feed-parser/internal/handler"
	"github.com/supplyhub/yml-feed-parser/internal/handler/mocks"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/pkg/v1/commander"
)

func TestUnitHandlePreview(t *testing.T) {
	feedURL := "https://example.com/feed.xml"
	tree := &models.PreviewNode{
		Icon:  "store",
		Label: "Shop",
		Children: []models.PreviewNode{
			{Icon: "field", Label: "name", Value: lo.ToPtr("Shop")},
		},
	}
	stats := &models.PreviewStats{TotalNodes: 2, ParameterNodes: 1}

	tests := map[string]struct {
		body         string
		previewerErr error
		wantStatus   int
		wantFileType string
	}{
		"ok": {
			body:       `{"url":"https://example.com/feed.xml"}`,
			wantStatus: http.StatusOK,
		},
		"empty body": {
			body:       ``,
			wantStatus: http.StatusBadRequest,
		},
		"missing url": {
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		"preview error": {
			body:         `{"url":"https://example.com/feed.xml"}`,
			previewerErr: assert.AnError,
			wantStatus:   http.StatusUnprocessableEntity,
			wantFileType: "xml",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			previewer := mocks.NewPreviewer(t)
			cmndr := mocks.NewCommander(t)

			if tt.wantStatus == http.StatusOK {
				previewer.On("Preview", mock.Anything, feedURL).Return(tree, stats, nil)
			}
			if tt.previewerErr != nil {
				previewer.On("Preview", mock.Anything, feedURL).Return(nil, nil, tt.previewerErr)
			}

			logger := zerolog.Nop()
			han := handler.NewHTTPHandler(previewer, cmndr, &logger)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/preview", strings.NewReader(tt.body))

			han.Router().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, "should return correct status code")

			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Success bool                 `json:"success"`
					Tree    *models.PreviewNode  `json:"tree"`
					Stats   *models.PreviewStats `json:"stats"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should return valid json")
				assert.True(t, resp.Success, "response should be successful")
				assert.Equal(t, tree, resp.Tree, "should return projected tree")
				assert.Equal(t, stats, resp.Stats, "should return tree statistics")
			}

			if tt.wantFileType != "" {
				var resp struct {
					Success  bool   `json:"success"`
					FileType string `json:"fileType"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should return valid json")
				assert.False(t, resp.Success, "response should not be successful")
				assert.Equal(t, tt.wantFileType, resp.FileType, "should name resolved file type")
			}
		})
	}
}

func TestUnitHandleParse(t *testing.T) {
	cmd := commander.ParseCommand{
		FeedURL:    "https://example.com/feed.xml",
		TemplateID: "tpl-1",
		StoreID:    "store-1",
	}

	tests := map[string]struct {
		body         string
		commanderErr error
		wantSend     bool
		wantStatus   int
	}{
		"ok": {
			body:       `{"feedUrl":"https://example.com/feed.xml","templateId":"tpl-1","storeId":"store-1"}`,
			wantSend:   true,
			wantStatus: http.StatusAccepted,
		},
		"empty body": {
			body:       ``,
			wantStatus: http.StatusBadRequest,
		},
		"missing feed url": {
			body:       `{"templateId":"tpl-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		"commander error": {
			body:         `{"feedUrl":"https://example.com/feed.xml","templateId":"tpl-1","storeId":"store-1"}`,
			commanderErr: assert.AnError,
			wantSend:     true,
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			previewer := mocks.NewPreviewer(t)
			cmndr := mocks.NewCommander(t)

			if tt.wantSend {
				cmndr.On("SendParseCommand", mock.Anything, cmd).Return(tt.commanderErr)
			}

			logger := zerolog.Nop()
			han := handler.NewHTTPHandler(previewer, cmndr, &logger)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader(tt.body))

			han.Router().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, "should return correct status code")
		})
	}
}
