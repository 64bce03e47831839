package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
)

// URLPrefix is the serving prefix for uploaded files. It must stay under
// /api so the files remain reachable through the same path-based reverse
// proxy rule as the rest of the API.
const URLPrefix = "/api/uploads"

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var videoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

// KindForContentType maps an upload's declared content type onto a media
// kind, rejecting anything outside the allow-list.
func KindForContentType(contentType string) (models.MediaKind, bool) {
	switch {
	case imageTypes[contentType]:
		return models.MediaImage, true
	case videoTypes[contentType]:
		return models.MediaVideo, true
	default:
		return "", false
	}
}

// KindFromSegment parses the {kind} path segment of media routes
// ("images" or "videos").
func KindFromSegment(segment string) (models.MediaKind, bool) {
	switch segment {
	case models.MediaImage.Dir():
		return models.MediaImage, true
	case models.MediaVideo.Dir():
		return models.MediaVideo, true
	default:
		return "", false
	}
}

func allowedContentTypes() []string {
	out := make([]string, 0, len(imageTypes)+len(videoTypes))
	for t := range imageTypes {
		out = append(out, t)
	}
	for t := range videoTypes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MediaStore owns the uploads directory tree: uploads/images and
// uploads/videos. Stored names are always server-generated tokens so a
// client-supplied filename can never pick the storage path.
type MediaStore struct {
	root   string
	logger zerolog.Logger
}

func NewMediaStore(root string) (*MediaStore, error) {
	for _, kind := range []models.MediaKind{models.MediaImage, models.MediaVideo} {
		if err := os.MkdirAll(filepath.Join(root, kind.Dir()), 0o755); err != nil {
			return nil, fmt.Errorf("creating uploads dir for %s: %w", kind.Dir(), err)
		}
	}

	return &MediaStore{
		root:   root,
		logger: log.With().Str("handlerName", "mediaStore").Logger(),
	}, nil
}

// Save streams an upload to disk under a fresh token name and returns its
// metadata. The extension comes from the original filename, defaulting to
// "bin" when the name has none.
func (m *MediaStore) Save(file io.Reader, contentType, originalName string) (models.UploadResult, error) {
	kind, ok := KindForContentType(contentType)
	if !ok {
		return models.UploadResult{}, errs.NewUnsupportedMediaTypeError(contentType, allowedContentTypes())
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		ext = "bin"
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	path := filepath.Join(m.root, kind.Dir(), filename)

	dest, err := os.Create(path)
	if err != nil {
		return models.UploadResult{}, errs.NewInternalErrorWithCause("failed to store uploaded file", err)
	}

	size, err := io.Copy(dest, file)
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return models.UploadResult{}, errs.NewInternalErrorWithCause("failed to store uploaded file", err)
	}

	m.logger.Info().
		Str("filename", filename).
		Str("contentType", contentType).
		Int64("size", size).
		Msg("stored upload")

	return models.UploadResult{
		Filename:     filename,
		OriginalName: originalName,
		Type:         kind,
		ContentType:  contentType,
		Size:         size,
		URL:          fmt.Sprintf("%s/%s/%s", URLPrefix, kind.Dir(), filename),
	}, nil
}

// List enumerates both upload subdirectories, newest first within each
// kind. Size and modification time come straight from the filesystem.
func (m *MediaStore) List() (models.MediaListing, error) {
	images, err := m.listKind(models.MediaImage)
	if err != nil {
		return models.MediaListing{}, err
	}
	videos, err := m.listKind(models.MediaVideo)
	if err != nil {
		return models.MediaListing{}, err
	}
	return models.MediaListing{Images: images, Videos: videos}, nil
}

func (m *MediaStore) listKind(kind models.MediaKind) ([]models.MediaFile, error) {
	dir := filepath.Join(m.root, kind.Dir())
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to list uploads", err)
	}

	files := make([]models.MediaFile, 0, len(entries))
	modTimes := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		modTimes[entry.Name()] = info.ModTime()
		files = append(files, models.MediaFile{
			Filename: entry.Name(),
			URL:      fmt.Sprintf("%s/%s/%s", URLPrefix, kind.Dir(), entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime().UTC().Format(time.RFC3339),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return modTimes[files[i].Filename].After(modTimes[files[j].Filename])
	})
	return files, nil
}

// Delete removes a stored file. The kind segment must be one of the two
// recognized directories and the filename may not carry path components.
func (m *MediaStore) Delete(kindSegment, filename string) error {
	path, err := m.Resolve(kindSegment, filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errs.NewNotFoundError("file not found")
		}
		return errs.NewInternalErrorWithCause("failed to delete file", err)
	}

	m.logger.Info().Str("filename", filename).Str("kind", kindSegment).Msg("deleted upload")
	return nil
}

// Resolve validates a kind segment plus filename pair and returns the
// on-disk path, without checking existence.
func (m *MediaStore) Resolve(kindSegment, filename string) (string, error) {
	kind, ok := KindFromSegment(kindSegment)
	if !ok {
		return "", errs.NewBadRequestError("invalid media kind, expected 'images' or 'videos'")
	}

	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", errs.NewBadRequestError("invalid filename")
	}

	return filepath.Join(m.root, kind.Dir(), filename), nil
}
