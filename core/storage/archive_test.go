package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"wowsync/core/storage"
	"wowsync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var noSuchKey = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

func TestArchive_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads new snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		archive := storage.NewArchive(client, "snapshots", "commodities")

		client.On("StatObject", mock.Anything, "snapshots", "commodities/abc.json", mock.Anything).
			Return(minio.ObjectInfo{}, noSuchKey)
		client.On("PutObject", mock.Anything, "snapshots", "commodities/abc.json", mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		stored, err := archive.Save(ctx, "abc", []byte("{}"))
		require.NoError(t, err)
		assert.True(t, stored)
		client.AssertExpectations(t)
	})

	t.Run("Skips existing snapshot", func(t *testing.T) {
		client := new(mocks.Client)
		archive := storage.NewArchive(client, "snapshots", "commodities")

		client.On("StatObject", mock.Anything, "snapshots", "commodities/abc.json", mock.Anything).
			Return(minio.ObjectInfo{Key: "commodities/abc.json"}, nil)

		stored, err := archive.Save(ctx, "abc", []byte("{}"))
		require.NoError(t, err)
		assert.False(t, stored)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stat failure", func(t *testing.T) {
		client := new(mocks.Client)
		archive := storage.NewArchive(client, "snapshots", "commodities")

		client.On("StatObject", mock.Anything, "snapshots", "commodities/abc.json", mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("connection refused"))

		_, err := archive.Save(ctx, "abc", []byte("{}"))
		assert.Error(t, err)
	})
}

func TestArchive_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snapshots").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "snapshots", mock.Anything).Return(nil)

		err := storage.NewArchive(client, "snapshots", "commodities").EnsureBucket(ctx)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Existing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)

		err := storage.NewArchive(client, "snapshots", "commodities").EnsureBucket(ctx)
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArchive_Load(t *testing.T) {
	client := new(mocks.Client)
	archive := storage.NewArchive(client, "snapshots", "commodities")

	client.On("GetObject", mock.Anything, "snapshots", "commodities/abc.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"auctions":[]}`)), nil)

	data, err := archive.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auctions":[]}`, string(data))
}
