package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Success      200  {array}   studentResponse
// @Failure      500  {object}  map[string]string
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.ListStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Create handles POST /students.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentCreateRequest  true  "Student fields"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	rec, err := bindRecord(c)
	if err != nil {
		return err
	}

	id, err := h.service.CreateStudent(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "student created", ID: id})
}

// Get handles GET /students/:id. The stored credential is never returned.
//
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student id"
// @Success      200  {object}  studentResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}

	st, err := h.service.GetStudent(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Update handles PUT /students/:id. Only supplied fields change.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Student id"
// @Param        body  body      studentUpdateRequest  true  "Fields to change"
// @Success      200   {object}  studentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}
	rec, err := bindRecord(c)
	if err != nil {
		// An unknown id outranks a malformed body.
		if _, getErr := h.service.GetStudent(c.Request().Context(), id); getErr != nil {
			return getErr
		}
		return err
	}

	st, err := h.service.UpdateStudent(c.Request().Context(), id, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Delete handles DELETE /students/:id.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrStudentNotFound)
	if err != nil {
		return err
	}
	if err := h.service.DeleteStudent(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "student deleted"})
}
