package httpapi

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/go-chi/chi/v5"
)

// UploadResponse carries the URL clients store in receipt_url or photos.
type UploadResponse struct {
	AssetID string            `json:"asset_id"`
	URL     string            `json:"url"`
	Asset   models.MediaAsset `json:"asset"`
}

func (s *Server) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	file, header, err := s.formFile(w, r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	defer file.Close()
	contentType, err := sniffReceipt(file)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	asset, err := s.Media.Save(r.Context(), services.BucketReceipts, contentType, header.Filename, CurrentUserID(r), file)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logUpload(r, asset)
	WriteJSON(w, http.StatusCreated, UploadResponse{AssetID: asset.ID, URL: services.BuildAssetURL(asset.ID), Asset: asset})
}

func (s *Server) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	file, header, err := s.formFile(w, r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	defer file.Close()
	asset, err := s.Media.SavePhoto(r.Context(), header.Filename, CurrentUserID(r), file)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logUpload(r, asset)
	WriteJSON(w, http.StatusCreated, UploadResponse{AssetID: asset.ID, URL: services.BuildAssetURL(asset.ID), Asset: asset})
}

func (s *Server) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MediaMaxUploadBytes)
	if err := r.ParseMultipartForm(s.Config.MediaMaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, services.ServiceError{Status: http.StatusRequestEntityTooLarge, Message: "file too large"}
		}
		return nil, nil, services.ErrBadRequest("expected a multipart form")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, models.NewValidationError("file", "required", "is required")
	}
	return file, header, nil
}

// sniffReceipt types the upload from its leading bytes and rewinds it. The
// client's Content-Type is ignored. SVG sniffs as text and is refused with it.
func sniffReceipt(file multipart.File) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", services.WrapError(err, "read upload")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", services.WrapError(err, "rewind upload")
	}
	contentType, _, _ := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if contentType == "image/svg+xml" || (!strings.HasPrefix(contentType, "image/") && contentType != "application/pdf") {
		return "", models.NewValidationError("file", "content_type", "must be an image or a PDF")
	}
	return contentType, nil
}

func (s *Server) logUpload(r *http.Request, asset models.MediaAsset) {
	s.Log.WithComponent(logging.ComponentMedia).InfoContext(r.Context(), "media stored",
		logging.FieldEntityID, asset.ID,
		logging.FieldUserID, CurrentUserID(r),
		logging.FieldBytes, asset.SizeBytes,
	)
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	asset, err := s.Media.Get(r.Context(), chi.URLParam(r, "assetId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	file, err := s.Media.Open(asset)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	defer file.Close()
	name := asset.ID
	if asset.Filename != nil {
		name = *asset.Filename
		w.Header().Set("Content-Disposition", "inline; filename=\""+strings.ReplaceAll(name, "\"", "")+"\"")
	}
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, name, asset.CreatedAt, file)
}
