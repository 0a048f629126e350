package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	app_errors "ollama-ui/internal/errors"
	"ollama-ui/internal/llm"
	"ollama-ui/internal/llm/mocks"
	"ollama-ui/internal/service"
)

func setupModelService(t *testing.T) (*service.ModelService, *mocks.MockProvider) {
	mockProvider := mocks.NewMockProvider(t)
	return service.NewModelService(mockProvider), mockProvider
}

func TestModelService_Names(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		resp      *llm.ListModelsResponse
		err       error
		wantNames []string
	}{
		{
			name: "Success - server order kept",
			resp: &llm.ListModelsResponse{Models: []llm.Model{
				{Name: "mistral:7b"}, {Name: "llama3:latest"}, {Name: "codellama"},
			}},
			wantNames: []string{"mistral:7b", "llama3:latest", "codellama"},
		},
		{
			name: "Success - duplicates kept",
			resp: &llm.ListModelsResponse{Models: []llm.Model{
				{Name: "llama3"}, {Name: "llama3"},
			}},
			wantNames: []string{"llama3", "llama3"},
		},
		{
			name:      "Success - no models",
			resp:      &llm.ListModelsResponse{},
			wantNames: []string{},
		},
		{
			name:      "Failure - provider error",
			err:       fmt.Errorf("%w: connection refused", app_errors.ErrTransport),
			wantNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			modelService, mockProvider := setupModelService(t)
			mockProvider.On("ListModels", ctx).Return(tc.resp, tc.err).Once()

			names := modelService.Names(ctx)

			assert.NotNil(t, names)
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestModelService_Names_AgainstServer(t *testing.T) {
	t.Run("Server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		names := service.NewModelService(llm.NewOllamaProvider(server.URL)).Names(context.Background())
		assert.Empty(t, names)
	})

	t.Run("Connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		names := service.NewModelService(llm.NewOllamaProvider(url)).Names(context.Background())
		assert.Empty(t, names)
	})
}
