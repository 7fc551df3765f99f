package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/core/validation"
)

type stubStudentService struct {
	listFn   func(ctx context.Context) ([]*domain.Student, error)
	getFn    func(ctx context.Context, id int64) (*domain.Student, error)
	createFn func(ctx context.Context, rec validation.Record) (int64, error)
	updateFn func(ctx context.Context, id int64, rec validation.Record) (*domain.Student, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubStudentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	return s.listFn(ctx)
}

func (s *stubStudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	return s.getFn(ctx, id)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, rec validation.Record) (int64, error) {
	return s.createFn(ctx, rec)
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, id int64, rec validation.Record) (*domain.Student, error) {
	return s.updateFn(ctx, id, rec)
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubTeacherService struct {
	listFn   func(ctx context.Context) ([]*domain.Teacher, error)
	getFn    func(ctx context.Context, id int64) (*domain.Teacher, error)
	createFn func(ctx context.Context, rec validation.Record) (int64, error)
	updateFn func(ctx context.Context, id int64, rec validation.Record) (*domain.Teacher, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubTeacherService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	return s.listFn(ctx)
}

func (s *stubTeacherService) GetTeacher(ctx context.Context, id int64) (*domain.Teacher, error) {
	return s.getFn(ctx, id)
}

func (s *stubTeacherService) CreateTeacher(ctx context.Context, rec validation.Record) (int64, error) {
	return s.createFn(ctx, rec)
}

func (s *stubTeacherService) UpdateTeacher(ctx context.Context, id int64, rec validation.Record) (*domain.Teacher, error) {
	return s.updateFn(ctx, id, rec)
}

func (s *stubTeacherService) DeleteTeacher(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubSessionService struct {
	loginFn  func(ctx context.Context, studentID int64, password string) (string, error)
	verifyFn func(ctx context.Context, studentID int64, token string) (*domain.Session, error)
	logoutFn func(ctx context.Context, studentID int64, token string) error
}

func (s *stubSessionService) Login(ctx context.Context, studentID int64, password string) (string, error) {
	return s.loginFn(ctx, studentID, password)
}

func (s *stubSessionService) Verify(ctx context.Context, studentID int64, token string) (*domain.Session, error) {
	return s.verifyFn(ctx, studentID, token)
}

func (s *stubSessionService) Logout(ctx context.Context, studentID int64, token string) error {
	return s.logoutFn(ctx, studentID, token)
}

type stubNotificationService struct {
	notifyFn func(ctx context.Context, in ports.NotifyInput) (*domain.Notification, error)
}

func (s *stubNotificationService) Notify(ctx context.Context, in ports.NotifyInput) (*domain.Notification, error) {
	return s.notifyFn(ctx, in)
}

type stubMediaService struct {
	attachFn func(ctx context.Context, studentID int64, up ports.Upload) (string, error)
}

func (s *stubMediaService) AttachProfilePicture(ctx context.Context, studentID int64, up ports.Upload) (string, error) {
	return s.attachFn(ctx, studentID, up)
}

// newContext builds an echo context for method/target with an optional JSON
// body and the given :id path value.
func newContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}
