package registration

import "amora/models"

// ControlDescriptor tells a client which interactive control renders a
// question, together with its options and constraints.
type ControlDescriptor struct {
	Control       string   `json:"control"`
	Placeholder   string   `json:"placeholder,omitempty"`
	Options       []string `json:"options,omitempty"`
	MinSelections int      `json:"minSelections,omitempty"`
}

// controlsByID special-cases controls for reserved field ids. Keeping the
// whole set in one table keeps the special cases auditable.
var controlsByID = map[string]string{
	"email":           "email-input",
	"password":        "password-input",
	"confirmPassword": "password-input",
	"photos":          "photo-grid",
	"interests":       "tag-picker",
	"hobbies":         "tag-picker",
	"values":          "tag-picker",
	"languages":       "tag-picker",
	"occupation":      "tag-picker",
	"education":       "tag-picker",
}

var controlsByType = map[models.FieldType]string{
	models.FieldText:        "text-input",
	models.FieldTextarea:    "textarea",
	models.FieldSelect:      "select",
	models.FieldMultiSelect: "multi-select",
	models.FieldRadio:       "radio-group",
	models.FieldCheckbox:    "checkbox",
	models.FieldDate:        "date-picker",
}

// fallbackControl renders any question whose id and fieldType are both
// unknown to the tables above.
const fallbackControl = "text-input"

// DescriptorFor resolves the control for a question: reserved id first, then
// fieldType, then the explicit fallback.
func DescriptorFor(q models.QuestionDefinition) ControlDescriptor {
	control, ok := controlsByID[q.ID]
	if !ok {
		if control, ok = controlsByID[q.ProfileField]; !ok {
			if control, ok = controlsByType[q.FieldType]; !ok {
				control = fallbackControl
			}
		}
	}

	desc := ControlDescriptor{
		Control:     control,
		Placeholder: q.Placeholder,
		Options:     q.FieldOptions,
	}
	if q.FieldType == models.FieldMultiSelect || control == "tag-picker" {
		if q.Required {
			desc.MinSelections = MinSelectionsFor(q.ID)
		}
	}
	return desc
}
