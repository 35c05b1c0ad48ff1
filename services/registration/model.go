package registration

import (
	"time"

	"amora/models"
)

// Session is one in-flight wizard run: the catalog snapshot it was compiled
// from, the compiled steps, the live form, the navigator position, any
// locally attached photos, and — once the pipeline has run that far — the
// created account's ID, which guards retries against duplicate accounts.
type Session struct {
	ID               string                      `json:"id"`
	Questions        []models.QuestionDefinition `json:"questions"`
	Steps            []StepDefinition            `json:"steps"`
	Form             *FormModel                  `json:"form"`
	Nav              NavigatorState              `json:"nav"`
	PendingPhotos    []models.PendingPhoto       `json:"pendingPhotos,omitempty"`
	CreatedAccountID string                      `json:"createdAccountId,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
	LastUpdatedAt    time.Time                   `json:"lastUpdatedAt"`
}

// Navigator binds the session's steps, form and position.
func (s *Session) Navigator() *Navigator {
	return NewNavigator(s.Steps, s.Form, &s.Nav)
}

// QuestionView is one question prepared for rendering: its definition, the
// resolved control, and its current value and error.
type QuestionView struct {
	models.QuestionDefinition
	Control ControlDescriptor `json:"control"`
	Value   any               `json:"value"`
	Error   string            `json:"error,omitempty"`
}

// StepView is the wizard payload returned to clients after every operation.
type StepView struct {
	SessionID      string         `json:"sessionId"`
	Step           int            `json:"step"`
	TotalSteps     int            `json:"totalSteps"`
	Name           string         `json:"name"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Questions      []QuestionView `json:"questions"`
	Completion     map[int]bool   `json:"completion"`
	CompletedSteps []int          `json:"completedSteps"`
	PendingPhotos  int            `json:"pendingPhotos"`
	CanSubmit      bool           `json:"canSubmit"`
}

// View renders the session's current step.
func (s *Session) View() *StepView {
	nav := s.Navigator()
	cur := nav.Current()

	questions := make([]QuestionView, 0, len(cur.Questions))
	for _, q := range cur.Questions {
		questions = append(questions, QuestionView{
			QuestionDefinition: q,
			Control:            DescriptorFor(q),
			Value:              s.Form.Value(q.ID),
			Error:              s.Form.ErrorFor(q.ID),
		})
	}

	completed := s.Nav.CompletedSteps
	if completed == nil {
		completed = []int{}
	}

	return &StepView{
		SessionID:      s.ID,
		Step:           cur.Step,
		TotalSteps:     len(s.Steps),
		Name:           cur.Name,
		Title:          cur.Title,
		Description:    cur.Description,
		Questions:      questions,
		Completion:     CompletionByStep(s.Steps, s.Form.Values),
		CompletedSteps: completed,
		PendingPhotos:  len(s.PendingPhotos),
		CanSubmit:      nav.IsTerminal(),
	}
}
