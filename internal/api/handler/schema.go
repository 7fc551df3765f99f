package handler

import "github.com/DioneMartin/REST-AWS/internal/core/domain"

// --- Request / Response types ---

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// studentCreateRequest documents the POST /students body. Handlers decode a
// raw record so that the schema validator can check field types itself.
type studentCreateRequest struct {
	GivenNames     string  `json:"givenNames" example:"Ana"`
	Surnames       string  `json:"surnames" example:"Li"`
	EnrollmentCode string  `json:"enrollmentCode" example:"A1"`
	GradeAverage   float64 `json:"gradeAverage" example:"8.5"`
	Password       string  `json:"password" example:"secret"`
}

type studentUpdateRequest struct {
	GivenNames     *string  `json:"givenNames,omitempty"`
	Surnames       *string  `json:"surnames,omitempty"`
	EnrollmentCode *string  `json:"enrollmentCode,omitempty"`
	GradeAverage   *float64 `json:"gradeAverage,omitempty"`
}

type teacherRequest struct {
	EmployeeCode  string `json:"employeeCode" example:"E1"`
	GivenNames    string `json:"givenNames" example:"Eva"`
	Surnames      string `json:"surnames" example:"Ruiz"`
	TeachingHours int64  `json:"teachingHours" example:"20"`
}

type studentResponse = domain.Student

type teacherResponse = domain.Teacher

type photoResponse struct {
	Message               string `json:"message"`
	ProfilePictureLocator string `json:"profilePictureLocator"`
}

type notifyRequest struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	SessionToken string `json:"sessionToken"`
}

type sessionRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
}

type verifyResponse struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}
