package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImageAccepted(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"logo.png", "image/png"},
		{"banner.webp", "image/webp"},
		{"anim.gif", "image/gif"},
	}

	for _, tc := range cases {
		err := ValidateImage(fileHeader(tc.name, tc.contentType, 1024))
		assert.NoError(t, err, tc.name)
	}
}

func TestValidateImageRejectsNil(t *testing.T) {
	err := ValidateImage(nil)

	assert.ErrorIs(t, err, ErrFileRequired)
}

func TestValidateImageRejectsOversize(t *testing.T) {
	err := ValidateImage(fileHeader("big.jpg", "image/jpeg", MaxImageSize+1))

	assert.ErrorIs(t, err, ErrFileSize)
}

func TestValidateImageAcceptsExactLimit(t *testing.T) {
	err := ValidateImage(fileHeader("edge.png", "image/png", MaxImageSize))

	assert.NoError(t, err)
}

func TestValidateImageRejectsBadContentType(t *testing.T) {
	err := ValidateImage(fileHeader("doc.jpg", "application/pdf", 1024))

	assert.ErrorIs(t, err, ErrFileType)
}

func TestValidateImageRejectsBadExtension(t *testing.T) {
	err := ValidateImage(fileHeader("script.svg", "image/jpeg", 1024))

	assert.ErrorIs(t, err, ErrFileType)
}

func TestValidateImageUppercaseExtension(t *testing.T) {
	err := ValidateImage(fileHeader("PHOTO.JPG", "image/jpeg", 1024))

	assert.NoError(t, err)
}
