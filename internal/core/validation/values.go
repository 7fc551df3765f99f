package validation

// Values holds the typed fields that passed validation: string for Text,
// float64 for Number and int64 for Integer.
type Values map[string]any

// Text returns a pointer to the named text value, or nil when it was not supplied.
func (v Values) Text(name string) *string {
	if s, ok := v[name].(string); ok {
		return &s
	}
	return nil
}

// Number returns a pointer to the named numeric value, or nil when it was not supplied.
func (v Values) Number(name string) *float64 {
	if n, ok := v[name].(float64); ok {
		return &n
	}
	return nil
}

// Integer returns a pointer to the named integer value, or nil when it was not supplied.
func (v Values) Integer(name string) *int64 {
	if n, ok := v[name].(int64); ok {
		return &n
	}
	return nil
}
