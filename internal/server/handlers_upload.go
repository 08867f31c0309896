package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/devfolio/internal/types"
)

// maxUploadBytes caps project preview images at 5 MB.
const maxUploadBytes = 5 << 20

// handleUploadProjectPreview accepts a multipart "image" file and proxies it
// to the media host, returning the hosted URL.
func (s *Server) handleUploadProjectPreview(w http.ResponseWriter, r *http.Request) {
	if s.uploader == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		s.errorResponse(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	result, err := s.uploader.UploadImage(r.Context(), file)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
	})
}
