// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/config"
)

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func newStorageForTest(t *testing.T) *StorageService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8080"

	service, err := NewStorageService(cfg)
	require.NoError(t, err)
	return service
}

func TestNewStorageService(t *testing.T) {
	// No AWS credentials: local mode, no S3 client.
	local, err := NewStorageService(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, local.s3Client)

	// Static credentials: the S3 client must come up without error.
	cfg := &config.Config{}
	cfg.AWS.Region = "ap-southeast-1"
	cfg.AWS.AccessKeyID = "AKIAEXAMPLE"
	cfg.AWS.SecretAccessKey = "secret"
	cfg.AWS.S3Bucket = "agency-uploads"

	remote, err := NewStorageService(cfg)
	require.NoError(t, err)
	assert.NotNil(t, remote.s3Client)
}

func TestStorageService_UploadCategories(t *testing.T) {
	service := newStorageForTest(t)

	documents := service.GetDefaultUploadOptions("documents")
	assert.Equal(t, int64(10*1024*1024), documents.MaxSize)
	assert.Contains(t, documents.AllowedTypes, ".pdf")
	assert.False(t, documents.IsPublic)

	images := service.GetDefaultUploadOptions("images")
	assert.Equal(t, int64(5*1024*1024), images.MaxSize)
	assert.Contains(t, images.AllowedTypes, ".webp")
	assert.True(t, images.IsPublic)

	testimonialVideos := service.GetDefaultUploadOptions("testimonial_videos")
	assert.Equal(t, int64(20*1024*1024), testimonialVideos.MaxSize)

	promoVideos := service.GetDefaultUploadOptions("promo_videos")
	assert.Equal(t, int64(50*1024*1024), promoVideos.MaxSize)
}

func TestStorageService_ValidateImage(t *testing.T) {
	service := newStorageForTest(t)

	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 600)...)
	assert.NoError(t, service.ValidateImage(fakeFile{bytes.NewReader(jpeg)}))

	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 600)...)
	assert.NoError(t, service.ValidateImage(fakeFile{bytes.NewReader(png)}))

	pdf := append([]byte("%PDF-1.7"), make([]byte, 600)...)
	assert.Error(t, service.ValidateImage(fakeFile{bytes.NewReader(pdf)}))
}
