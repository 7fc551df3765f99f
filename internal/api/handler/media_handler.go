package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/core/service"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/storage"
)

const defaultContentType = "application/octet-stream"

// MediaHandler handles profile picture uploads.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// UploadPhoto handles POST /students/:id/photo.
//
// @Summary      Attach a profile picture
// @Tags         students
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int   true  "Student id"
// @Param        photo  formData  file  true  "Picture file"
// @Success      200    {object}  photoResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /students/{id}/photo [post]
func (h *MediaHandler) UploadPhoto(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(service.FieldPhoto)
	if err != nil {
		return &domain.ValidationError{Field: service.FieldPhoto, Reason: "is required"}
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	locator, err := h.service.AttachProfilePicture(c.Request().Context(), id, ports.Upload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Body:        f,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photoResponse{Message: "profile picture stored", ProfilePictureLocator: locator})
}

// ObjectReader exposes objects kept by the in-process media backend.
type ObjectReader interface {
	Get(key string) (storage.Object, bool)
}

// ServeObject handles GET /media/:key for the in-process media backend so
// that its locators resolve.
func ServeObject(objects ObjectReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		obj, ok := objects.Get(c.Param("key"))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "object not found")
		}
		return c.Blob(http.StatusOK, obj.ContentType, obj.Data)
	}
}
