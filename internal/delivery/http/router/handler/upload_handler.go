// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"empdir/config"
	"empdir/internal/domain/service"
)

const defaultUploadFolder = "employee_photos"

// UploadHandler accepts a single binary file and stores it on the image
// host, returning the hosted URL.
type UploadHandler struct {
	uploadSvc service.UploadService
	folder    string
	logger    *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(uploadSvc service.UploadService, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	folder := defaultUploadFolder
	if cfg.Cloudinary != nil && cfg.Cloudinary.Folder != "" {
		folder = cfg.Cloudinary.Folder
	}

	return &UploadHandler{
		uploadSvc: uploadSvc,
		folder:    folder,
		logger:    logger,
	}
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

// Upload handles POST /upload with a multipart "file" part.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Success: false,
			Message: err.Error(),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	result, err := h.uploadSvc.Upload(c.Request().Context(), dataURI, h.folder)
	if err != nil {
		h.logger.Error("Upload failed", slog.String("error", err.Error()))

		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Success:  true,
		Message:  "Uploaded",
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	})
}
