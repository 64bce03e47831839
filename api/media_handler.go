package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/services"
)

// Uploads above this size spill to temp files instead of memory while the
// multipart form is read.
const maxUploadMemory = 32 << 20

const resumeFilename = "ORBYA_Resume.pdf"

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	media     *services.MediaStore
	staticDir string
}

func newMediaHandler(media *services.MediaStore, staticDir string) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		media:     media,
		staticDir: staticDir,
	}
}

func (h mediaHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("expected multipart form upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		result, err := h.media.Save(file, header.Header.Get("Content-Type"), header.Filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

func (h mediaHandler) listMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing, err := h.media.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, listing)
	}
}

func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		filename := chi.URLParam(r, "filename")

		if err := h.media.Delete(kind, filename); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message":  "File deleted successfully",
			"filename": filename,
		})
	}
}

// serveUpload streams a stored file back. Content type and range requests
// are handled by the standard file server machinery.
func (h mediaHandler) serveUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		filename := chi.URLParam(r, "filename")

		path, err := h.media.Resolve(kind, filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := os.Stat(path); err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("file not found"))
			return
		}

		http.ServeFile(w, r, path)
	}
}

func (h mediaHandler) downloadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(h.staticDir, resumeFilename)

		if _, err := os.Stat(path); err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError(
				"Resume file not found. Upload a PDF to "+path))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+resumeFilename+`"`)
		http.ServeFile(w, r, path)
	}
}
