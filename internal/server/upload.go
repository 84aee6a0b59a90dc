package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// uploadedFile pairs the multipart field name with the public URL the
// media host assigned to its content.
type uploadedFile struct {
	FileKey string `json:"file_key"`
	URL     string `json:"url"`
}

type uploadRasterResponse struct {
	Message       string         `json:"message"`
	UploadedFiles []uploadedFile `json:"uploaded_files"`
}

// maxUploadBytes reads the ACD_MAX_UPLOAD_BYTES environment variable and
// returns the maximum allowed request size in bytes. Returns 0 if not
// set (meaning no limit). Returns an error if the value cannot be parsed.
func maxUploadBytes() (int64, error) {
	raw := os.Getenv("ACD_MAX_UPLOAD_BYTES")
	if raw == "" {
		return 0, nil // no limit configured
	}
	return strconv.ParseInt(raw, 10, 64)
}

// rasterObjectKey builds the destination key for one uploaded file. A
// random prefix keeps files with repeated names from clobbering each
// other inside the fixed folder.
func rasterObjectKey(filename string) string {
	return fmt.Sprintf("%s/%s-%s", mediaFolder, uuid.New().String(), filepath.Base(filename))
}

// handleUploadRaster forwards every file field of a multipart request to
// the media host and returns the collected URLs. The batch is
// all-or-nothing: the first failure aborts the request and no partial
// result is reported.
func (s *Server) handleUploadRaster(w http.ResponseWriter, r *http.Request) {
	limit, err := maxUploadBytes()
	if err != nil {
		writeMessage(w, "server misconfigured")
		return
	}
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		writeMessage(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	uploaded := []uploadedFile{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			writeMessage(w, err.Error())
			return
		}

		// Only file fields are forwarded; plain form values are ignored.
		if part.FileName() == "" {
			_ = part.Close()
			continue
		}

		objectKey := rasterObjectKey(part.FileName())
		publicURL, err := s.media.Upload(ctx, objectKey, part, part.Header.Get("Content-Type"))
		_ = part.Close()
		if err != nil {
			GetMetrics().RecordUploadError()
			rid := RequestIDFromContext(r.Context())
			log.Printf("rid=%s msg=media_upload_failed key=%s err=%v", rid, objectKey, err)
			writeMessage(w, err.Error())
			return
		}

		GetMetrics().RecordUpload()
		uploaded = append(uploaded, uploadedFile{
			FileKey: part.FormName(),
			URL:     publicURL,
		})
	}

	writeJSON(w, uploadRasterResponse{
		Message:       "Raster files uploaded successfully",
		UploadedFiles: uploaded,
	})
}
