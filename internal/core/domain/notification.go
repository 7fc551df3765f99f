package domain

import (
	"fmt"
	"time"
)

const DefaultNotificationSubject = "Student notification"

// Notification is the message handed to the delivery channel.
type Notification struct {
	StudentID int64     `json:"studentId"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultNotificationBody renders the fixed template used when the caller
// supplies no body.
func DefaultNotificationBody(s *Student) string {
	return fmt.Sprintf(
		"Hello, this is an automated message.\n"+
			"Student information:\n"+
			"Name: %s\n"+
			"Enrollment code: %s\n"+
			"Grade average: %.2f\n",
		s.FullName(), s.EnrollmentCode, s.GradeAverage,
	)
}
