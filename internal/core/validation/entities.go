package validation

// Wire field names.
const (
	FieldGivenNames     = "givenNames"
	FieldSurnames       = "surnames"
	FieldEnrollmentCode = "enrollmentCode"
	FieldGradeAverage   = "gradeAverage"
	FieldPassword       = "password"
	FieldEmployeeCode   = "employeeCode"
	FieldTeachingHours  = "teachingHours"
)

// Student is the schema for student records.
var Student = Schema{
	Entity: "student",
	Fields: []Field{
		{Name: FieldGivenNames, Kind: Text, Rules: "required,max=100", Required: true},
		{Name: FieldSurnames, Kind: Text, Rules: "required,max=100", Required: true},
		{Name: FieldEnrollmentCode, Kind: Text, Rules: "required,max=50", Required: true},
		{Name: FieldGradeAverage, Kind: Number, Rules: "gte=0,lte=10", Required: true},
		{Name: FieldPassword, Kind: Text, Rules: "required,maxbytes=72", Required: true, CreateOnly: true},
	},
}

// Teacher is the schema for teacher records.
var Teacher = Schema{
	Entity: "teacher",
	Fields: []Field{
		{Name: FieldGivenNames, Kind: Text, Rules: "required,max=100", Required: true},
		{Name: FieldSurnames, Kind: Text, Rules: "required,max=100", Required: true},
		{Name: FieldEmployeeCode, Kind: Text, Rules: "required,max=50", Required: true},
		{Name: FieldTeachingHours, Kind: Integer, Rules: "gt=0", Required: true},
	},
}
