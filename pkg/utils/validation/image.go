package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 5MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPEG, PNG, WEBP, GIF")
	ErrFileRequired = errors.New("no file provided")
)

const MaxImageSize = 5 * 1024 * 1024 // 5MB

var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ValidateImage yüklenen dosyanın tipini ve boyutunu ağa çıkmadan önce kontrol eder.
func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !AllowedImageTypes[contentType] {
		return ErrFileType
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !allowedExtensions[ext] {
		return ErrFileType
	}

	return nil
}
