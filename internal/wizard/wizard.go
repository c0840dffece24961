// Package wizard implements the multi-step form state machine used by the
// seller onboarding flow: a draft payload accumulated across steps, a
// clamped current-step pointer, and a completed-step set that only grows.
package wizard

import (
	"maps"
	"slices"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Payload is the accumulated draft data. Earlier steps may be incomplete;
// the payload tolerates missing keys until final submission.
type Payload map[string]any

// FieldError is a single field-level validation failure, keyed by the
// payload field name so the client can render it next to the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Step is the static descriptor of one wizard page. Form returns a fresh
// form struct for the step's field subset; a nil Form marks a pure review
// step that trivially passes validation.
type Step struct {
	Ordinal int
	Title   string
	Form    func() any
}

// StepProgress is the per-step slice of Progress.
type StepProgress struct {
	Ordinal   int    `json:"ordinal"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// Progress summarizes wizard position for the progress UI.
type Progress struct {
	CurrentStep     int            `json:"currentStep"`
	TotalSteps      int            `json:"totalSteps"`
	PercentComplete float64        `json:"percentComplete"`
	Steps           []StepProgress `json:"steps"`
}

// State is the single source of truth for in-progress multi-step input and
// the current position. It performs no I/O; persistence across reloads is
// handled by snapshotting into a RegistrationDraft.
type State struct {
	steps     []Step
	current   int
	completed map[int]struct{}
	data      Payload
}

// NewState creates an empty wizard positioned on the first step.
func NewState(steps []Step) *State {
	return &State{
		steps:     steps,
		current:   1,
		completed: make(map[int]struct{}),
		data:      make(Payload),
	}
}

// Restore rebuilds wizard state from a persisted draft. The step pointer is
// clamped into range in case the step list changed between releases.
func Restore(steps []Step, draft *entity.RegistrationDraft) *State {
	s := NewState(steps)
	if draft == nil {
		return s
	}

	s.current = clamp(draft.CurrentStep, 1, len(steps))
	for _, ordinal := range draft.CompletedSteps {
		if ordinal >= 1 && ordinal <= len(steps) {
			s.completed[ordinal] = struct{}{}
		}
	}
	if draft.Payload != nil {
		s.data = maps.Clone(Payload(draft.Payload))
	}

	return s
}

// Snapshot serializes the wizard state into a draft for persistence.
func (s *State) Snapshot(ownerID uuid.UUID, kind entity.DraftKind) *entity.RegistrationDraft {
	return &entity.RegistrationDraft{
		OwnerID:        ownerID,
		Kind:           kind,
		CurrentStep:    s.current,
		CompletedSteps: s.CompletedSteps(),
		Payload:        maps.Clone(map[string]any(s.data)),
	}
}

// Data returns the current accumulated fields.
func (s *State) Data() Payload {
	return s.data
}

// SetFormData shallow-merges the patch into the draft. Called on every
// field change event from the active step.
func (s *State) SetFormData(patch Payload) {
	for key, value := range patch {
		s.data[key] = value
	}
}

// Current returns the 1-based ordinal of the active step.
func (s *State) Current() int {
	return s.current
}

// TotalSteps returns the number of steps.
func (s *State) TotalSteps() int {
	return len(s.steps)
}

// NextStep moves the pointer forward, clamped to the last step.
func (s *State) NextStep() {
	s.current = clamp(s.current+1, 1, len(s.steps))
}

// PrevStep moves the pointer back, clamped to the first step. The
// completed-step set is untouched; only the pointer moves.
func (s *State) PrevStep() {
	s.current = clamp(s.current-1, 1, len(s.steps))
}

// MarkCompleted records a step ordinal as passed. The set grows
// monotonically and never shrinks on back-navigation.
func (s *State) MarkCompleted(ordinal int) {
	if ordinal >= 1 && ordinal <= len(s.steps) {
		s.completed[ordinal] = struct{}{}
	}
}

// IsCompleted reports whether a step has passed validation before.
func (s *State) IsCompleted(ordinal int) bool {
	_, ok := s.completed[ordinal]

	return ok
}

// CompletedSteps returns the passed ordinals in ascending order.
func (s *State) CompletedSteps() []int {
	ordinals := make([]int, 0, len(s.completed))
	for ordinal := range s.completed {
		ordinals = append(ordinals, ordinal)
	}
	slices.Sort(ordinals)

	return ordinals
}

// ValidateCurrentStep parses the draft against the active step's schema and
// returns field-level failures. A step without a schema (review step)
// trivially passes. Never panics and performs no I/O.
func (s *State) ValidateCurrentStep() []FieldError {
	step := s.steps[s.current-1]
	if step.Form == nil {
		return nil
	}

	return ValidateForm(s.data, step.Form())
}

// Advance validates the current step and, on success, marks it completed
// and moves the pointer forward. On failure the pointer is left unchanged
// and the field errors are returned for inline display.
func (s *State) Advance() []FieldError {
	if fieldErrs := s.ValidateCurrentStep(); len(fieldErrs) > 0 {
		return fieldErrs
	}

	s.MarkCompleted(s.current)
	s.NextStep()

	return nil
}

// Progress reports the wizard position for the progress UI.
func (s *State) Progress() Progress {
	steps := make([]StepProgress, 0, len(s.steps))
	for _, step := range s.steps {
		steps = append(steps, StepProgress{
			Ordinal:   step.Ordinal,
			Title:     step.Title,
			Completed: s.IsCompleted(step.Ordinal),
			Current:   step.Ordinal == s.current,
		})
	}

	percent := 0.0
	if len(s.steps) > 0 {
		percent = float64(len(s.completed)) / float64(len(s.steps)) * 100
	}

	return Progress{
		CurrentStep:     s.current,
		TotalSteps:      len(s.steps),
		PercentComplete: percent,
		Steps:           steps,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
