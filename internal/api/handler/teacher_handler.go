package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// TeacherHandler handles HTTP requests for teacher records.
type TeacherHandler struct {
	service ports.TeacherService
}

func NewTeacherHandler(service ports.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// List handles GET /teachers.
//
// @Summary      List teachers
// @Tags         teachers
// @Produce      json
// @Success      200  {array}   teacherResponse
// @Failure      500  {object}  map[string]string
// @Router       /teachers [get]
func (h *TeacherHandler) List(c echo.Context) error {
	teachers, err := h.service.ListTeachers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// Create handles POST /teachers.
//
// @Summary      Create a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        body  body      teacherRequest  true  "Teacher fields"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /teachers [post]
func (h *TeacherHandler) Create(c echo.Context) error {
	rec, err := bindRecord(c)
	if err != nil {
		return err
	}

	id, err := h.service.CreateTeacher(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "teacher created", ID: id})
}

// Get handles GET /teachers/:id.
//
// @Summary      Get a teacher
// @Tags         teachers
// @Produce      json
// @Param        id   path      int  true  "Teacher id"
// @Success      200  {object}  teacherResponse
// @Failure      404  {object}  map[string]string
// @Router       /teachers/{id} [get]
func (h *TeacherHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrTeacherNotFound)
	if err != nil {
		return err
	}

	t, err := h.service.GetTeacher(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Update handles PUT /teachers/:id.
//
// @Summary      Update a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Teacher id"
// @Param        body  body      teacherRequest  true  "Fields to change"
// @Success      200   {object}  teacherResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /teachers/{id} [put]
func (h *TeacherHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrTeacherNotFound)
	if err != nil {
		return err
	}
	rec, err := bindRecord(c)
	if err != nil {
		// An unknown id outranks a malformed body.
		if _, getErr := h.service.GetTeacher(c.Request().Context(), id); getErr != nil {
			return getErr
		}
		return err
	}

	t, err := h.service.UpdateTeacher(c.Request().Context(), id, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /teachers/:id.
//
// @Summary      Delete a teacher
// @Tags         teachers
// @Produce      json
// @Param        id   path      int  true  "Teacher id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrTeacherNotFound)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTeacher(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "teacher deleted"})
}
