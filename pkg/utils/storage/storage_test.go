package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "bdgaraj_backend/pkg/config"
)

func TestObjectKeyFormat(t *testing.T) {
	key := ObjectKey("services", "Motor Bakım Fotoğrafı.JPG")

	assert.True(t, strings.HasPrefix(key, "services/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotContains(t, key, " ")
}

func TestObjectKeyUnique(t *testing.T) {
	a := ObjectKey("products", "same.png")
	b := ObjectKey("products", "same.png")

	assert.NotEqual(t, a, b)
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := newLocalStorage(appconfig.StorageConfig{
		LocalDir:  dir,
		PublicURL: "/uploads",
	})
	require.NoError(t, err)

	body := bytes.NewBufferString("fake-image-bytes")
	url, err := store.Save("services/test.jpg", body, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/services/test.jpg", url)

	saved, err := os.ReadFile(filepath.Join(dir, "services", "test.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(saved))

	require.NoError(t, store.Delete(url))
	_, err = os.Stat(filepath.Join(dir, "services", "test.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitSelectsLocalDriverByDefault(t *testing.T) {
	err := Init(appconfig.StorageConfig{
		Driver:    "local",
		LocalDir:  t.TempDir(),
		PublicURL: "/uploads",
	})
	require.NoError(t, err)
	assert.NotNil(t, Get())
}
