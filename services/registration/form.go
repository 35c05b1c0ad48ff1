package registration

// FormModel is the live state of one wizard form: the current value for every
// schema key, the current validation message per key, and a submission flag.
// It performs no I/O; persistence is the session store's concern.
type FormModel struct {
	Schema      CompiledSchema    `json:"schema"`
	Values      map[string]any    `json:"values"`
	FieldErrors map[string]string `json:"fieldErrors"`
	Submitting  bool              `json:"submitting"`
}

// NewFormModel creates a form initialized from the default value map.
func NewFormModel(schema CompiledSchema, defaults map[string]any) *FormModel {
	values := make(map[string]any, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}
	return &FormModel{
		Schema:      schema,
		Values:      values,
		FieldErrors: make(map[string]string),
	}
}

// SetValue stores a field value, refreshes derived fields when a birth-date
// input changed, and synchronously re-validates the touched field so its
// error state always reflects the latest value.
func (f *FormModel) SetValue(id string, v any) {
	f.Values[id] = normalizeValue(v)

	if isDerivedTrigger(f.Schema, id) {
		RecomputeDerived(f.Schema, f.Values)
	}

	if msg := f.Schema.ValidateField(id, f.Values); msg != "" {
		f.FieldErrors[id] = msg
	} else {
		delete(f.FieldErrors, id)
	}
}

// SetValues applies a batch of field updates.
func (f *FormModel) SetValues(fields map[string]any) {
	for id, v := range fields {
		f.SetValue(id, v)
	}
}

// Value returns the current value for a field.
func (f *FormModel) Value(id string) any {
	return f.Values[id]
}

// ErrorFor returns the current validation message for a field, if any.
func (f *FormModel) ErrorFor(id string) string {
	return f.FieldErrors[id]
}

// SetError records a manual error on a field (used for the structural
// photo check, which has no catalog question behind it).
func (f *FormModel) SetError(id, msg string) {
	f.FieldErrors[id] = msg
}

// ValidateFields validates only the named subset, leaving untouched fields'
// error state alone. Returns true when every named field passes.
func (f *FormModel) ValidateFields(ids []string) bool {
	ok := true
	for _, id := range ids {
		if msg := f.Schema.ValidateField(id, f.Values); msg != "" {
			f.FieldErrors[id] = msg
			ok = false
		} else {
			delete(f.FieldErrors, id)
		}
	}
	return ok
}

// ValidateAll validates every schema key. Used only immediately before
// submission.
func (f *FormModel) ValidateAll() bool {
	return f.ValidateFields(f.Schema.Keys())
}

// ErrorsFor returns the subset of field errors for the given keys.
func (f *FormModel) ErrorsFor(ids []string) map[string]string {
	errs := make(map[string]string)
	for _, id := range ids {
		if msg, ok := f.FieldErrors[id]; ok {
			errs[id] = msg
		}
	}
	return errs
}
