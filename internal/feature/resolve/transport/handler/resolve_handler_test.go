package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// mockResolveUsecase is a mock implementation of the ResolveUsecase interface.
type mockResolveUsecase struct {
	ResolveFunc func(ctx context.Context, query string) ([]entity.Candidate, error)
}

func (m *mockResolveUsecase) ResolveCandidates(ctx context.Context, query string) ([]entity.Candidate, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, query)
	}
	return nil, nil
}

func newTestRouter(mock *mockResolveUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewResolveHandler(mock)
	router := gin.New()
	router.GET("/api/resolve", handler.Resolve)
	router.GET("/api/search", handler.Search)
	return router
}

func TestResolveHandler_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		resolveFunc    func(ctx context.Context, query string) ([]entity.Candidate, error)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:  "success: candidates returned",
			query: "엔비디아",
			resolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return []entity.Candidate{
					{Ticker: "NVDA", LongName: "NVIDIA Corporation", Exchange: "NMS", Source: entity.SourceAlias},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:  "success: no candidates is an empty list",
			query: "zzzz",
			resolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:  "failure: query too short",
			query: "a",
			resolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return nil, usecase.ErrQueryTooShort
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "failure: internal error",
			query: "nvda",
			resolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return nil, errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockResolveUsecase{ResolveFunc: tt.resolveFunc})

			req, _ := http.NewRequest(http.MethodGet, "/api/resolve?name="+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var body []map[string]any
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, "NVDA", body[0]["ticker"])
					assert.Equal(t, "NVIDIA Corporation", body[0]["longname"])
					assert.Equal(t, "ALIAS", body[0]["source"])
				}
			}
		})
	}
}

func TestResolveHandler_Search(t *testing.T) {
	t.Run("too-short query returns an empty list, not an error", func(t *testing.T) {
		router := newTestRouter(&mockResolveUsecase{
			ResolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return nil, usecase.ErrQueryTooShort
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/search?q=a", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("results are capped and mapped to compact rows", func(t *testing.T) {
		cands := make([]entity.Candidate, 0, 12)
		for i := 0; i < 12; i++ {
			cands = append(cands, entity.Candidate{
				Ticker:   "T" + string(rune('A'+i)),
				LongName: "Company",
				Exchange: "NMS",
				Source:   entity.SourceGlobalSearch,
			})
		}
		router := newTestRouter(&mockResolveUsecase{
			ResolveFunc: func(ctx context.Context, query string) ([]entity.Candidate, error) {
				return cands, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/search?q=company", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 8)
		assert.Equal(t, "TA", body[0]["ticker"])
		assert.Equal(t, "Company", body[0]["name"])
		assert.Equal(t, "NMS", body[0]["ex"])
	})
}
