package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// NotificationHandler sends messages about a student.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Notify handles POST /students/:id/notify. An empty body sends the default
// message built from the student's record.
//
// @Summary      Notify about a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      int            true   "Student id"
// @Param        body  body      notifyRequest  false  "Optional subject and body overrides"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /students/{id}/notify [post]
func (h *NotificationHandler) Notify(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}

	var req notifyRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidPayload
	}

	_, err = h.service.Notify(c.Request().Context(), ports.NotifyInput{
		StudentID: id,
		Subject:   req.Subject,
		Body:      req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "notification sent"})
}
