package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadApp() *fiber.App {
	app := fiber.New()
	app.Post("/upload/service-image", UploadServiceImage)
	return app
}

func buildMultipart(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadRejectsMissingFile(t *testing.T) {
	app := uploadApp()

	req := httptest.NewRequest("POST", "/upload/service-image", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsInvalidType(t *testing.T) {
	app := uploadApp()

	body, contentType := buildMultipart(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest("POST", "/upload/service-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Contains(t, payload["error"], "JPEG, PNG, WEBP and GIF")
}

func TestUploadRejectsCorruptImage(t *testing.T) {
	app := uploadApp()

	// Geçerli uzantı ve tip ama decode edilemeyen içerik
	body, contentType := buildMultipart(t, "broken.jpg", "image/jpeg", []byte("not-an-image"))
	req := httptest.NewRequest("POST", "/upload/service-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
