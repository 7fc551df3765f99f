package domain

import "time"

// Session maps an opaque token to the student that logged in. Sessions are
// deactivated on logout, never deleted.
type Session struct {
	Token     string    `json:"sessionToken" bson:"_id"`
	StudentID int64     `json:"studentId" bson:"student_id"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// BelongsTo reports whether the session was issued to studentID.
func (s *Session) BelongsTo(studentID int64) bool {
	return s.StudentID == studentID
}
