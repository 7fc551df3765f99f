package domain

import "fmt"

// Student is a student record. PasswordHash is never serialised.
type Student struct {
	ID                    int64   `json:"id" bson:"_id"`
	GivenNames            string  `json:"givenNames" bson:"given_names"`
	Surnames              string  `json:"surnames" bson:"surnames"`
	EnrollmentCode        string  `json:"enrollmentCode" bson:"enrollment_code"`
	GradeAverage          float64 `json:"gradeAverage" bson:"grade_average"`
	ProfilePictureLocator string  `json:"profilePictureLocator,omitempty" bson:"profile_picture_locator,omitempty"`
	PasswordHash          string  `json:"-" bson:"password_hash"`
}

// StudentPatch carries the fields of a partial update. Nil fields are left unchanged.
type StudentPatch struct {
	GivenNames            *string
	Surnames              *string
	EnrollmentCode        *string
	GradeAverage          *float64
	ProfilePictureLocator *string
}

// Apply copies every non-nil patch field onto s.
func (p StudentPatch) Apply(s *Student) {
	if p.GivenNames != nil {
		s.GivenNames = *p.GivenNames
	}
	if p.Surnames != nil {
		s.Surnames = *p.Surnames
	}
	if p.EnrollmentCode != nil {
		s.EnrollmentCode = *p.EnrollmentCode
	}
	if p.GradeAverage != nil {
		s.GradeAverage = *p.GradeAverage
	}
	if p.ProfilePictureLocator != nil {
		s.ProfilePictureLocator = *p.ProfilePictureLocator
	}
}

// FullName joins given names and surnames.
func (s *Student) FullName() string {
	return fmt.Sprintf("%s %s", s.GivenNames, s.Surnames)
}
