package verify_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/mocks"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/verify"
)

func TestService_Verify(t *testing.T) {
	t.Run("returns grouped tags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockMetadataReader(ctrl)
		svc := verify.NewService(reader)

		data := []byte{0xFF, 0xD8}
		groups := map[string]map[string]string{"0th": {"Make": "Apple"}}
		reader.EXPECT().Read(data).Return(groups, nil)

		got, err := svc.Verify(context.Background(), data)

		require.NoError(t, err)
		assert.Equal(t, groups, got)
	})

	t.Run("empty upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := verify.NewService(mocks.NewMockMetadataReader(ctrl))

		_, err := svc.Verify(context.Background(), nil)

		assert.ErrorIs(t, err, domain.ErrEmptyImage)
	})

	t.Run("wraps reader errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockMetadataReader(ctrl)
		svc := verify.NewService(reader)

		reader.EXPECT().Read(gomock.Any()).Return(nil, fmt.Errorf("%w: %v", domain.ErrNoMetadata, errors.New("no exif data")))

		_, err := svc.Verify(context.Background(), []byte{1})

		assert.ErrorIs(t, err, domain.ErrNoMetadata)
	})
}
