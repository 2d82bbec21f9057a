package domain

import "time"

// LearningStatus is the integer-coded acquisition state of a token.
// The wire values (1, 2, 3) are part of the persisted schema.
type LearningStatus int16

const (
	LearningStatusLearning LearningStatus = 1
	LearningStatusKnown    LearningStatus = 2
	LearningStatusIgnore   LearningStatus = 3
)

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusLearning, LearningStatusKnown, LearningStatusIgnore:
		return true
	}
	return false
}

func (s LearningStatus) String() string {
	switch s {
	case LearningStatusLearning:
		return "LEARNING"
	case LearningStatusKnown:
		return "KNOWN"
	case LearningStatusIgnore:
		return "IGNORE"
	}
	return "UNKNOWN"
}

// ParseLearningStatus validates a raw integer code read from storage or input.
func ParseLearningStatus(v int16) (LearningStatus, error) {
	s := LearningStatus(v)
	if !s.IsValid() {
		return 0, NewValidationError("status", "must be 1 (LEARNING), 2 (KNOWN) or 3 (IGNORE)")
	}
	return s, nil
}

// Learning stage bounds. Reaching MaxLearningStage does NOT auto-promote to
// KNOWN; promotion requires an explicit MARK_KNOWN from the caller.
const (
	MinLearningStage int16 = 1
	MaxLearningStage int16 = 5
)

// ProgressAction is a learner-driven transition on a token's progress.
type ProgressAction string

const (
	ProgressActionMarkKnown  ProgressAction = "MARK_KNOWN"
	ProgressActionMarkIgnore ProgressAction = "MARK_IGNORE"
	ProgressActionAdvance    ProgressAction = "ADVANCE"
	ProgressActionReset      ProgressAction = "RESET"
)

func (a ProgressAction) IsValid() bool {
	switch a {
	case ProgressActionMarkKnown, ProgressActionMarkIgnore, ProgressActionAdvance, ProgressActionReset:
		return true
	}
	return false
}

func (a ProgressAction) String() string { return string(a) }

// TokenProgress records the learner's acquisition state for one token.
// At most one row exists per token. Invariant: Stage is set exactly when
// Status is LEARNING, and then lies in [MinLearningStage, MaxLearningStage].
type TokenProgress struct {
	TokenID     int64
	Status      LearningStatus
	Stage       *int16
	Translation *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTokenProgress is the first-exposure state: LEARNING at stage 1.
func NewTokenProgress(tokenID int64) TokenProgress {
	stage := MinLearningStage
	return TokenProgress{
		TokenID: tokenID,
		Status:  LearningStatusLearning,
		Stage:   &stage,
	}
}

// Validate checks the status/stage invariant. Every transition is validated
// through here before commit; a violation is never persisted.
func (p *TokenProgress) Validate() error {
	if !p.Status.IsValid() {
		return NewValidationError("status", "must be 1 (LEARNING), 2 (KNOWN) or 3 (IGNORE)")
	}
	if p.Status == LearningStatusLearning {
		if p.Stage == nil {
			return NewConstraintError("stage_iff_learning", "learning_stage must be set while status is LEARNING")
		}
		if *p.Stage < MinLearningStage || *p.Stage > MaxLearningStage {
			return NewConstraintError("learning_stage_valid", "learning_stage must be between 1 and 5")
		}
		return nil
	}
	if p.Stage != nil {
		return NewConstraintError("stage_iff_learning", "learning_stage must be cleared unless status is LEARNING")
	}
	return nil
}

// Apply returns the progress after the given action. The receiver is not
// modified; Translation is preserved across transitions.
//
// ADVANCE is valid only from LEARNING and saturates at MaxLearningStage
// (advancing at stage 5 stays at 5, not an error). MARK_KNOWN, MARK_IGNORE
// and RESET are valid from any state.
func (p TokenProgress) Apply(action ProgressAction) (TokenProgress, error) {
	next := p

	switch action {
	case ProgressActionMarkKnown:
		next.Status = LearningStatusKnown
		next.Stage = nil
	case ProgressActionMarkIgnore:
		next.Status = LearningStatusIgnore
		next.Stage = nil
	case ProgressActionAdvance:
		if p.Status != LearningStatusLearning {
			return TokenProgress{}, NewValidationError("action", "ADVANCE is valid only while status is LEARNING")
		}
		stage := *p.Stage
		if stage < MaxLearningStage {
			stage++
		}
		next.Stage = &stage
	case ProgressActionReset:
		stage := MinLearningStage
		next.Status = LearningStatusLearning
		next.Stage = &stage
	default:
		return TokenProgress{}, NewValidationError("action", "unknown progress action")
	}

	if err := next.Validate(); err != nil {
		return TokenProgress{}, err
	}
	return next, nil
}
