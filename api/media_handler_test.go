package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbya/portfolio-backend/models"
)

func uploadRequest(t *testing.T, filename, contentType, contents string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = io.WriteString(part, contents)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	return req
}

func uploadFile(t *testing.T, r chi.Router, filename, contentType, contents string) models.UploadResult {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, filename, contentType, contents))
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	return decodeBody[models.UploadResult](t, rec)
}

func TestUploadEndpoint(t *testing.T) {
	t.Run("accepts an image", func(t *testing.T) {
		r, _ := newTestRouter(t)

		result := uploadFile(t, r, "still.png", "image/png", "pixels")
		assert.Equal(t, models.MediaImage, result.Type)
		assert.Equal(t, "still.png", result.OriginalName)
		assert.True(t, strings.HasPrefix(result.URL, "/api/uploads/images/"), result.URL)
	})

	t.Run("rejects text files", func(t *testing.T) {
		r, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, uploadRequest(t, "notes.txt", "text/plain", "hello"))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("requires the file field", func(t *testing.T) {
		r, _ := newTestRouter(t)

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		require.NoError(t, form.WriteField("other", "value"))
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestServeUpload(t *testing.T) {
	r, _ := newTestRouter(t)
	result := uploadFile(t, r, "still.png", "image/png", "pixels")

	t.Run("serves the stored file at its URL", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, result.URL, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pixels", rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/api/uploads/images/nope.png", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown kind segment", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/api/uploads/docs/file.pdf", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMediaListingAndDelete(t *testing.T) {
	r, _ := newTestRouter(t)
	image := uploadFile(t, r, "still.png", "image/png", "pixels")
	video := uploadFile(t, r, "reel.mp4", "video/mp4", "frames")

	t.Run("lists both kinds", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/api/media", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		listing := decodeBody[models.MediaListing](t, rec)
		require.Len(t, listing.Images, 1)
		require.Len(t, listing.Videos, 1)
		assert.Equal(t, image.Filename, listing.Images[0].Filename)
		assert.Equal(t, video.Filename, listing.Videos[0].Filename)
	})

	t.Run("delete removes the file", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodDelete, "/api/media/images/"+image.Filename, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, r, http.MethodGet, image.URL, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doRequest(t, r, http.MethodDelete, "/api/media/images/"+image.Filename, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResumeDownload(t *testing.T) {
	t.Run("missing resume", func(t *testing.T) {
		r, _ := newTestRouter(t)

		rec := doRequest(t, r, http.MethodGet, "/api/resume/download", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("serves the pdf as an attachment", func(t *testing.T) {
		r, dataDir := newTestRouter(t)
		staticDir := filepath.Join(dataDir, "static")
		require.NoError(t, os.MkdirAll(staticDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(staticDir, "ORBYA_Resume.pdf"), []byte("%PDF-1.4"), 0o644))

		rec := doRequest(t, r, http.MethodGet, "/api/resume/download", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	})
}
