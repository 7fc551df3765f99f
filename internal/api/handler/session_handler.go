package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// SessionHandler handles student login sessions.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Login handles POST /students/:id/session/login.
//
// @Summary      Open a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Student id"
// @Param        body  body      loginRequest  true  "Student password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /students/{id}/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}
	var req loginRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), id, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{SessionToken: token})
}

// Verify handles POST /students/:id/session/verify.
//
// @Summary      Check a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Student id"
// @Param        body  body      sessionRequest  true  "Session token"
// @Success      200   {object}  verifyResponse
// @Failure      400   {object}  map[string]string
// @Router       /students/{id}/session/verify [post]
func (h *SessionHandler) Verify(c echo.Context) error {
	id, err := pathID(c, domain.ErrInvalidSession)
	if err != nil {
		return err
	}
	var req sessionRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	sess, err := h.service.Verify(c.Request().Context(), id, req.SessionToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyResponse{Message: "session active", Active: sess.Active})
}

// Logout handles POST /students/:id/session/logout.
//
// @Summary      Close a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Student id"
// @Param        body  body      sessionRequest  true  "Session token"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /students/{id}/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	id, err := pathID(c, domain.ErrInvalidSession)
	if err != nil {
		return err
	}
	var req sessionRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), id, req.SessionToken); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "session closed"})
}
