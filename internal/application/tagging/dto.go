package tagging

import (
	"github.com/google/uuid"

	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

// RunReport summarizes one tagging run across all selected views.
// A nil report means the run was cancelled or aborted before any work
// persisted.
type RunReport struct {
	RunID       uuid.UUID
	HostVersion int
	Views       int
	Elements    int

	Tagged               int
	DeletedBlank         int
	SkippedAlreadyTagged int
	SkippedNotVisible    int
	SkippedNoBoundingBox int
	Failed               int
}

// record maps one element outcome onto its report counter.
func (r *RunReport) record(outcome domain.ElementOutcome) {
	switch outcome {
	case domain.OutcomeTagged:
		r.Tagged++
	case domain.OutcomeTaggedThenDeleted:
		r.DeletedBlank++
	case domain.OutcomeSkippedAlreadyTagged:
		r.SkippedAlreadyTagged++
	case domain.OutcomeSkippedNotVisible:
		r.SkippedNotVisible++
	case domain.OutcomeSkippedNoBoundingBox:
		r.SkippedNoBoundingBox++
	case domain.OutcomeFailed:
		r.Failed++
	}
}
