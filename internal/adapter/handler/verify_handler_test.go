package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/mocks"
)

func TestVerifyHandler_Verify(t *testing.T) {
	t.Run("returns tags grouped by directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		verifySvc := mocks.NewMockVerifyService(ctrl)
		h := handler.NewVerifyHandler(verifySvc)

		router := setupRouter()
		router.POST("/verify", h.Verify)

		verifySvc.EXPECT().Verify(gomock.Any(), []byte("jpeg bytes")).Return(map[string]map[string]string{
			"0th": {"Make": "Apple"},
			"GPS": {"GPSLatitudeRef": "N"},
		}, nil)

		req := createMultipartRequest(t, "/verify", []formFile{{field: "file", name: "a.jpg", content: []byte("jpeg bytes")}}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Apple", resp["0th"]["Make"])
		assert.Equal(t, "N", resp["GPS"]["GPSLatitudeRef"])
	})

	t.Run("file is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewVerifyHandler(mocks.NewMockVerifyService(ctrl))

		router := setupRouter()
		router.POST("/verify", h.Verify)

		req := createMultipartRequest(t, "/verify", nil, map[string]string{"other": "x"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("photo without metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		verifySvc := mocks.NewMockVerifyService(ctrl)
		h := handler.NewVerifyHandler(verifySvc)

		router := setupRouter()
		router.POST("/verify", h.Verify)

		verifySvc.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("reading metadata: %w", domain.ErrNoMetadata))

		req := createMultipartRequest(t, "/verify", []formFile{{field: "file", name: "a.png", content: []byte("png")}}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NO_METADATA", resp["code"])
	})
}
