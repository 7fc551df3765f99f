package domain

// Teacher is a teacher record.
type Teacher struct {
	ID            int64  `json:"id" bson:"_id"`
	EmployeeCode  string `json:"employeeCode" bson:"employee_code"`
	GivenNames    string `json:"givenNames" bson:"given_names"`
	Surnames      string `json:"surnames" bson:"surnames"`
	TeachingHours int64  `json:"teachingHours" bson:"teaching_hours"`
}

// TeacherPatch carries the fields of a partial update. Nil fields are left unchanged.
type TeacherPatch struct {
	EmployeeCode  *string
	GivenNames    *string
	Surnames      *string
	TeachingHours *int64
}

// Apply copies every non-nil patch field onto t.
func (p TeacherPatch) Apply(t *Teacher) {
	if p.EmployeeCode != nil {
		t.EmployeeCode = *p.EmployeeCode
	}
	if p.GivenNames != nil {
		t.GivenNames = *p.GivenNames
	}
	if p.Surnames != nil {
		t.Surnames = *p.Surnames
	}
	if p.TeachingHours != nil {
		t.TeachingHours = *p.TeachingHours
	}
}
