package registration

import (
	"strings"

	"amora/models"
)

// Step names are stable identifiers; titles are what the wizard displays.
const (
	StepAccount   = "account"
	StepBasics    = "basics"
	StepCultural  = "cultural-identity"
	StepInterests = "interests-values"
	StepLifestyle = "lifestyle"
	StepCareer    = "career"
	StepPhotos    = "photos"
)

// StepDefinition is one page of the wizard: an ordered group of questions.
type StepDefinition struct {
	Step        int                         `json:"step"`
	Name        string                      `json:"name"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Questions   []models.QuestionDefinition `json:"questions"`
}

type stepBucket struct {
	name        string
	title       string
	description string
	match       func(models.QuestionDefinition) bool
}

func idSet(ids ...string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

var (
	accountIDs  = idSet("email", "password", "confirmPassword")
	culturalIDs = idSet("ethnicity", "religion", "politics", "zodiacSign", "personalityType")
	interestIDs = idSet("interests", "hobbies", "values")
	lifestyleIDs = idSet(
		"diet", "smoking", "drinking", "sleepSchedule", "pets",
		"familyCloseness", "loveLanguage", "communicationStyle", "idealDate",
	)
	careerIDs = idSet("occupation", "education")
)

// stepBuckets is the fixed, ordered grouping rule. A question is assigned to
// the first bucket whose predicate matches; the ordering is product policy
// and must not be rearranged. The photos bucket is structural and terminal.
var stepBuckets = []stepBucket{
	{
		name: StepAccount, title: "Create your account",
		description: "Email and password to get you started.",
		match: func(q models.QuestionDefinition) bool {
			return q.RegistrationStep == models.StageAccount || accountIDs[q.ID]
		},
	},
	{
		name: StepBasics, title: "The basics",
		description: "A few essentials about you.",
		match: func(q models.QuestionDefinition) bool {
			return q.RegistrationStep == models.StagePersonal || q.Category == "Basics"
		},
	},
	{
		name: StepCultural, title: "Cultural identity",
		description: "Background, beliefs and personality.",
		match: func(q models.QuestionDefinition) bool {
			return culturalIDs[q.ID] || culturalIDs[q.ProfileField] ||
				q.RegistrationStep == models.StagePhysical ||
				q.RegistrationStep == models.StageBeliefs
		},
	},
	{
		name: StepInterests, title: "Interests & values",
		description: "What you love and what matters to you.",
		match: func(q models.QuestionDefinition) bool {
			return interestIDs[q.ID] || interestIDs[q.ProfileField] ||
				q.RegistrationStep == models.StagePreferences
		},
	},
	{
		name: StepLifestyle, title: "Lifestyle",
		description: "Your habits and day-to-day.",
		match: func(q models.QuestionDefinition) bool {
			return lifestyleIDs[q.ID] || lifestyleIDs[q.ProfileField] ||
				q.RegistrationStep == models.StageLifestyle
		},
	},
	{
		name: StepCareer, title: "Career",
		description: "What you do and where you studied.",
		match: func(q models.QuestionDefinition) bool {
			return careerIDs[q.ID] || careerIDs[q.ProfileField] ||
				q.RegistrationStep == models.StageProfile
		},
	},
	{
		name: StepPhotos, title: "Your photos",
		description: "Add at least one photo to finish up.",
		match: func(q models.QuestionDefinition) bool { return false },
	},
}

// ComputeSteps groups the enabled questions into ordered wizard steps. Step
// numbers are 1-based and contiguous; buckets with no questions are dropped,
// except the terminal photos step, which always exists. Photo-designated
// questions always live on the photos step; every other question lands in the
// first matching bucket, and anything unmatched falls back to basics so no
// enabled question is ever silently dropped.
func ComputeSteps(questions []models.QuestionDefinition) []StepDefinition {
	grouped := make(map[string][]models.QuestionDefinition)
	for _, q := range questions {
		if !q.Enabled {
			continue
		}
		if isPhotoQuestion(q) {
			grouped[StepPhotos] = append(grouped[StepPhotos], q)
			continue
		}
		placed := false
		for _, b := range stepBuckets {
			if b.match(q) {
				grouped[b.name] = append(grouped[b.name], q)
				placed = true
				break
			}
		}
		if !placed {
			grouped[StepBasics] = append(grouped[StepBasics], q)
		}
	}

	var steps []StepDefinition
	num := 1
	for _, b := range stepBuckets {
		qs := grouped[b.name]
		if len(qs) == 0 && b.name != StepPhotos {
			continue
		}
		steps = append(steps, StepDefinition{
			Step:        num,
			Name:        b.name,
			Title:       b.title,
			Description: b.description,
			Questions:   qs,
		})
		num++
	}
	return steps
}

// IsStepComplete reports whether every required question on the step carries
// a satisfying value. The account step additionally requires the password and
// confirmation to match; the photos step requires a non-empty photo list
// whether or not any catalog question maps to photos.
func IsStepComplete(step StepDefinition, values map[string]any) bool {
	for _, q := range step.Questions {
		if !questionSatisfied(q, values) {
			return false
		}
	}

	switch step.Name {
	case StepAccount:
		if asString(values["password"]) != asString(values["confirmPassword"]) {
			return false
		}
	case StepPhotos:
		photos, _ := asStringList(values["photos"])
		if len(photos) == 0 {
			return false
		}
	}
	return true
}

// CompletionByStep evaluates IsStepComplete for every step.
func CompletionByStep(steps []StepDefinition, values map[string]any) map[int]bool {
	completion := make(map[int]bool, len(steps))
	for _, step := range steps {
		completion[step.Step] = IsStepComplete(step, values)
	}
	return completion
}

func questionSatisfied(q models.QuestionDefinition, values map[string]any) bool {
	v := values[q.ID]

	// List-shaped fields have minimum cardinalities even when the question
	// itself is not flagged required.
	if q.ID == "occupation" || q.ID == "education" || isPhotoQuestion(q) {
		list, _ := asStringList(v)
		return len(list) >= 1
	}
	if q.FieldType == models.FieldMultiSelect {
		list, _ := asStringList(v)
		min := MinSelectionsFor(q.ID)
		if !q.Required {
			min = 0
		}
		return len(list) >= min
	}

	if !q.Required {
		return true
	}

	switch {
	case q.FieldType == models.FieldCheckbox:
		return asBool(v)
	case q.ID == "age":
		n, ok := asNumber(v)
		return ok && n >= MinimumAge
	case q.ProfileField == "dateOfBirth":
		dob, err := ParseBirthDate(strings.TrimSpace(asString(v)))
		return err == nil && AgeFromDate(dob, timeNow()) >= MinimumAge
	default:
		return strings.TrimSpace(asString(v)) != ""
	}
}

// questionIDs lists the form keys belonging to a step.
func questionIDs(step StepDefinition) []string {
	ids := make([]string, 0, len(step.Questions))
	for _, q := range step.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}
