package registration

import (
	"fmt"
	"regexp"
	"strings"

	"amora/models"
)

// RuleKind is the closed set of validation rule variants the schema builder
// emits. Every compiled rule is exactly one of these; there is no reflective
// dispatch anywhere downstream.
type RuleKind string

const (
	RuleString       RuleKind = "string"
	RuleOptionalText RuleKind = "optional-text"
	RuleEmail        RuleKind = "email"
	RulePassword     RuleKind = "password"
	RuleMatch        RuleKind = "match"
	RuleStringList   RuleKind = "string-list"
	RuleMinNumber    RuleKind = "min-number"
	RuleDateOfBirth  RuleKind = "date-of-birth"
	RuleCheckbox     RuleKind = "checkbox"
)

// Rule is one compiled validation rule, keyed by question ID in the schema.
type Rule struct {
	Kind     RuleKind `json:"kind"`
	Required bool     `json:"required"`
	MinLen   int      `json:"minLen,omitempty"`
	MinCount int      `json:"minCount,omitempty"`
	Min      float64  `json:"min,omitempty"`
	MinAge   int      `json:"minAge,omitempty"`
	MatchKey string   `json:"matchKey,omitempty"`
	Label    string   `json:"label,omitempty"`
}

// CompiledSchema maps each form field key to its single validation rule.
type CompiledSchema map[string]Rule

// minSelections carries the per-field minimum selection counts for
// multi-select questions. Fields not listed here require one selection.
var minSelections = map[string]int{
	"interests": 3,
	"hobbies":   2,
	"values":    3,
	"languages": 1,
}

// MinSelectionsFor returns the minimum selection count for a multi-select field.
func MinSelectionsFor(id string) int {
	if n, ok := minSelections[id]; ok {
		return n
	}
	return 1
}

// MinimumAge is the platform-wide age floor.
const MinimumAge = 18

// MinBioLength is the minimum length of a (generated) bio.
const MinBioLength = 20

// isPhotoQuestion reports whether a question holds the profile photo list.
func isPhotoQuestion(q models.QuestionDefinition) bool {
	return q.ProfileField == "photos" || q.ID == "photos"
}

// BuildSchema compiles the enabled question list into a validation schema.
// The fixed account fields (email, password, confirmPassword) are always
// injected, as is a photos rule when no catalog question maps to photos.
func BuildSchema(questions []models.QuestionDefinition) CompiledSchema {
	schema := CompiledSchema{
		"email":    {Kind: RuleEmail, Required: true, Label: "Email"},
		"password": {Kind: RulePassword, Required: true, MinLen: 8, Label: "Password"},
		"confirmPassword": {
			Kind: RuleMatch, Required: true, MatchKey: "password", Label: "Confirm password",
		},
	}

	photosSeen := false
	for _, q := range questions {
		if !q.Enabled {
			continue
		}
		if _, fixed := schema[q.ID]; fixed {
			// The injected account rules take precedence over catalog copies.
			continue
		}

		switch {
		case q.ID == "occupation" || q.ID == "education":
			// Always a non-empty string list, whatever the declared fieldType.
			schema[q.ID] = Rule{Kind: RuleStringList, Required: true, MinCount: 1, Label: q.Text}
		case isPhotoQuestion(q):
			photosSeen = true
			schema[q.ID] = Rule{Kind: RuleStringList, Required: true, MinCount: 1, Label: q.Text}
		case q.ProfileField == "dateOfBirth":
			schema[q.ID] = Rule{Kind: RuleDateOfBirth, Required: q.Required, MinAge: MinimumAge, Label: q.Text}
		case q.ProfileField == "bio":
			// Never user-entered; only validated once generated.
			schema[q.ID] = Rule{Kind: RuleOptionalText, MinLen: MinBioLength, Label: q.Text}
		case q.ID == "age":
			schema[q.ID] = Rule{Kind: RuleMinNumber, Required: q.Required, Min: MinimumAge, Label: q.Text}
		case q.FieldType == models.FieldMultiSelect:
			min := MinSelectionsFor(q.ID)
			if !q.Required {
				min = 0
			}
			schema[q.ID] = Rule{Kind: RuleStringList, Required: q.Required, MinCount: min, Label: q.Text}
		case q.FieldType == models.FieldCheckbox:
			schema[q.ID] = Rule{Kind: RuleCheckbox, Required: q.Required, Label: q.Text}
		default:
			// text, textarea, select, radio, date and any unknown fieldType all
			// validate as plain strings.
			schema[q.ID] = Rule{Kind: RuleString, Required: q.Required, Label: q.Text}
		}
	}

	if !photosSeen {
		// The photo requirement is structural, not catalog-driven.
		schema["photos"] = Rule{Kind: RuleStringList, Required: true, MinCount: 1, Label: "Photos"}
	}
	return schema
}

// BuildDefaults produces the initial form value for every schema key.
func BuildDefaults(questions []models.QuestionDefinition) map[string]any {
	defaults := map[string]any{
		"email":           "",
		"password":        "",
		"confirmPassword": "",
	}

	photosSeen := false
	for _, q := range questions {
		if !q.Enabled {
			continue
		}
		if _, fixed := defaults[q.ID]; fixed {
			continue
		}
		switch {
		case q.ID == "occupation" || q.ID == "education" || isPhotoQuestion(q) ||
			q.FieldType == models.FieldMultiSelect:
			defaults[q.ID] = []string{}
		case q.FieldType == models.FieldCheckbox:
			defaults[q.ID] = false
		default:
			defaults[q.ID] = ""
		}
		if isPhotoQuestion(q) {
			photosSeen = true
		}
	}

	if !photosSeen {
		defaults["photos"] = []string{}
	}
	return defaults
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// ValidateField evaluates the rule for one field against the current values.
// It returns an empty string when the value passes, or the error message.
func (s CompiledSchema) ValidateField(id string, values map[string]any) string {
	rule, ok := s[id]
	if !ok {
		return ""
	}
	v := values[id]

	switch rule.Kind {
	case RuleEmail:
		str := strings.TrimSpace(asString(v))
		if str == "" {
			return "email is required"
		}
		if !emailPattern.MatchString(str) {
			return "please enter a valid email address"
		}

	case RulePassword:
		str := asString(v)
		if str == "" {
			return "password is required"
		}
		if len(str) < rule.MinLen {
			return fmt.Sprintf("password must be at least %d characters long", rule.MinLen)
		}
		if !upperPattern.MatchString(str) {
			return "password must include at least one uppercase letter"
		}
		if !lowerPattern.MatchString(str) {
			return "password must include at least one lowercase letter"
		}
		if !digitPattern.MatchString(str) {
			return "password must include at least one number"
		}

	case RuleMatch:
		str := asString(v)
		if rule.Required && str == "" {
			return "please confirm your password"
		}
		if str != asString(values[rule.MatchKey]) {
			return "passwords do not match"
		}

	case RuleStringList:
		list, isList := asStringList(v)
		if !isList && v != nil {
			return "expected a list of values"
		}
		if len(list) < rule.MinCount {
			if rule.MinCount == 1 {
				return "please provide at least one value"
			}
			return fmt.Sprintf("please select at least %d options", rule.MinCount)
		}

	case RuleMinNumber:
		n, present := asNumber(v)
		if !present {
			if rule.Required {
				return "this field is required"
			}
			return ""
		}
		if n < rule.Min {
			return fmt.Sprintf("you must be at least %d years old", int(rule.Min))
		}

	case RuleDateOfBirth:
		str := strings.TrimSpace(asString(v))
		if str == "" {
			if rule.Required {
				return "date of birth is required"
			}
			return ""
		}
		dob, err := ParseBirthDate(str)
		if err != nil {
			return "please enter a valid date of birth"
		}
		if AgeFromDate(dob, timeNow()) < rule.MinAge {
			return fmt.Sprintf("you must be at least %d years old", rule.MinAge)
		}

	case RuleCheckbox:
		if rule.Required && !asBool(v) {
			return "this box must be checked"
		}

	case RuleOptionalText:
		str := strings.TrimSpace(asString(v))
		if str != "" && len(str) < rule.MinLen {
			return fmt.Sprintf("must be at least %d characters", rule.MinLen)
		}

	case RuleString:
		str := strings.TrimSpace(asString(v))
		if rule.Required && str == "" {
			return "this field is required"
		}
	}
	return ""
}

// Validate evaluates the named subset of fields and returns messages keyed by
// field ID; an empty map means every named field passed.
func (s CompiledSchema) Validate(ids []string, values map[string]any) map[string]string {
	errs := make(map[string]string)
	for _, id := range ids {
		if msg := s.ValidateField(id, values); msg != "" {
			errs[id] = msg
		}
	}
	return errs
}

// Keys returns every field key in the schema.
func (s CompiledSchema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
