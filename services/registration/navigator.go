package registration

// NavigatorState is the persisted position of a wizard session. CurrentStep
// is 1-based; CompletedSteps only ever grows (backward navigation never
// removes entries).
type NavigatorState struct {
	CurrentStep    int   `json:"currentStep"`
	CompletedSteps []int `json:"completedSteps"`
}

// Navigator gates transitions between wizard steps using the form's
// per-step validity.
type Navigator struct {
	Steps []StepDefinition
	Form  *FormModel
	State *NavigatorState
}

// NewNavigator binds the step list and form to a navigator state.
func NewNavigator(steps []StepDefinition, form *FormModel, state *NavigatorState) *Navigator {
	if state.CurrentStep < 1 {
		state.CurrentStep = 1
	}
	return &Navigator{Steps: steps, Form: form, State: state}
}

// Current returns the step definition for the current position. If the
// catalog reshuffled mid-session and the position no longer matches a step,
// it falls back to the first step and corrects the state; a blank step is
// never surfaced.
func (n *Navigator) Current() StepDefinition {
	if len(n.Steps) == 0 {
		return StepDefinition{}
	}
	if n.State.CurrentStep < 1 || n.State.CurrentStep > len(n.Steps) {
		n.State.CurrentStep = 1
	}
	return n.Steps[n.State.CurrentStep-1]
}

// Next advances one step when the current step's fields validate. On the
// terminal photos step it only runs the structural photo check and marks the
// step completed without advancing. Failures leave the position unchanged
// with the offending fields' errors set on the form.
func (n *Navigator) Next() error {
	cur := n.Current()
	if err := n.validateStep(cur); err != nil {
		return err
	}
	n.markCompleted(cur.Step)
	if cur.Step < len(n.Steps) {
		n.State.CurrentStep = cur.Step + 1
	}
	return nil
}

// Prev moves back one step unconditionally. Completed steps stay completed.
func (n *Navigator) Prev() {
	n.Current() // normalizes an out-of-range position first
	if n.State.CurrentStep > 1 {
		n.State.CurrentStep--
	}
}

// JumpTo moves to an arbitrary step. Backward jumps are always free; forward
// jumps replay Next over every intervening step and stop at the first step
// that fails to validate.
func (n *Navigator) JumpTo(target int) error {
	if target < 1 || target > len(n.Steps) {
		return &StepIncompleteError{Step: target}
	}
	cur := n.Current()
	if target <= cur.Step {
		n.State.CurrentStep = target
		return nil
	}
	for n.State.CurrentStep < target {
		if err := n.Next(); err != nil {
			return err
		}
	}
	return nil
}

// IsCompleted reports whether a step has ever passed forward validation.
func (n *Navigator) IsCompleted(step int) bool {
	for _, s := range n.State.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the current position is the last step.
func (n *Navigator) IsTerminal() bool {
	return n.Current().Step == len(n.Steps)
}

func (n *Navigator) markCompleted(step int) {
	if !n.IsCompleted(step) {
		n.State.CompletedSteps = append(n.State.CompletedSteps, step)
	}
}

func (n *Navigator) validateStep(step StepDefinition) error {
	if step.Name == StepPhotos {
		photos, _ := asStringList(n.Form.Value("photos"))
		if len(photos) == 0 {
			n.Form.SetError("photos", "please upload at least one photo")
			return &StepIncompleteError{
				Step:   step.Step,
				Fields: map[string]string{"photos": n.Form.ErrorFor("photos")},
			}
		}
		// Photo questions beyond the structural check still validate normally.
	}

	ids := questionIDs(step)
	if !n.Form.ValidateFields(ids) {
		return &StepIncompleteError{Step: step.Step, Fields: n.Form.ErrorsFor(ids)}
	}
	return nil
}
