package storage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	appconfig "bdgaraj_backend/pkg/config"
)

// Storage yüklenen resimlerin kalıcı olarak yazıldığı yer.
// Kaydedilen objenin public URL'ini döndürür.
type Storage interface {
	Save(key string, body *bytes.Buffer, contentType string) (string, error)
	Delete(url string) error
}

var active Storage

// Init config'e göre local disk veya S3 driver'ını seçer.
func Init(cfg appconfig.StorageConfig) error {
	var err error
	switch cfg.Driver {
	case "s3":
		active, err = newS3Storage(cfg)
	default:
		active, err = newLocalStorage(cfg)
	}
	return err
}

func Get() Storage {
	return active
}

// ObjectKey çakışmayan bir obje adı üretir: prefix/timestamp-uuid-slug.ext
func ObjectKey(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	return fmt.Sprintf("%s/%d-%s-%s%s",
		prefix,
		time.Now().Unix(),
		uuid.New().String()[:8],
		slug.Make(base),
		ext,
	)
}
