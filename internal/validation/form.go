package validation

// ValidateFunc is a complete rule set for one form.
type ValidateFunc func(Values) Errors

// Form tracks values, their current errors and which fields have been
// touched. Errors are recomputed on every change; only touched fields
// surface theirs.
type Form struct {
	fields   []string
	validate ValidateFunc
	values   Values
	errors   Errors
	touched  Touched
}

// NewContactForm returns an empty contact form.
func NewContactForm() *Form {
	return NewForm(ValidateContact, FieldFullName, FieldSubject, FieldEmail, FieldMessage)
}

// NewCheckoutForm returns an empty checkout form.
func NewCheckoutForm() *Form {
	return NewForm(ValidateCheckout, FieldFullName, FieldEmail, FieldPhone, FieldAddress)
}

func NewForm(validate ValidateFunc, fields ...string) *Form {
	f := &Form{
		fields:   fields,
		validate: validate,
	}
	f.Reset()
	return f
}

// Set updates one field and revalidates the whole form.
func (f *Form) Set(field, value string) {
	f.values[field] = value
	f.errors = f.validate(f.values)
}

// Blur marks a field as touched, enabling its error to show.
func (f *Form) Blur(field string) {
	f.touched[field] = true
}

// TouchAll marks every field touched, as a submit attempt does.
func (f *Form) TouchAll() {
	for _, field := range f.fields {
		f.touched[field] = true
	}
}

// VisibleError returns the field's error message only once the field
// has been touched.
func (f *Form) VisibleError(field string) (string, bool) {
	if !f.touched[field] {
		return "", false
	}
	msg, ok := f.errors[field]
	return msg, ok
}

// Validate recomputes and returns the current error map.
func (f *Form) Validate() Errors {
	f.errors = f.validate(f.values)
	return f.errors
}

// Valid reports whether the form currently has no errors.
func (f *Form) Valid() bool {
	return len(f.Validate()) == 0
}

// Values returns a copy of the current field values.
func (f *Form) Values() Values {
	copied := make(Values, len(f.values))
	for k, v := range f.values {
		copied[k] = v
	}
	return copied
}

// Reset clears values, errors and touched state.
func (f *Form) Reset() {
	f.values = Values{}
	f.touched = Touched{}
	f.errors = f.validate(f.values)
}
