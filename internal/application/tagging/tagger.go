package tagging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Torchit1/Speed-Draft/internal/domain/shared"
	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/console"
)

// tagView tags every eligible element of the collected list in one view.
// Per-element failures are logged and isolated; only a user abort escapes,
// which rolls back the whole run.
func (s *Service) tagView(
	ctx context.Context,
	log *zap.Logger,
	doc domain.Document,
	view domain.View,
	elements []domain.Element,
	reader domain.TaggedElementReader,
	bar console.ProgressReporter,
	state *runState,
) error {
	log = log.With(zap.String("view", view.Name), zap.Int64("view_id", view.ID))

	covered, err := s.coveredElementIDs(ctx, log, doc, view, reader)
	if err != nil {
		return err
	}
	log.Info("tagging view", zap.Int("already_covered", len(covered)))

	for idx, element := range elements {
		bar.Update(idx, len(elements))
		outcome, err := s.tagElement(ctx, log, doc, view, element, covered, state)
		if err != nil {
			if errors.Is(err, shared.ErrRunAborted) {
				return err
			}
			outcome = domain.OutcomeFailed
			log.Error("failed to process element",
				zap.Int64("element_id", element.ID),
				zap.Error(err))
		}
		state.report.record(outcome)
		log.Debug("element processed",
			zap.Int64("element_id", element.ID),
			zap.String("outcome", outcome.String()))
	}
	return nil
}

// coveredElementIDs builds the set of element identifiers already referenced
// by an existing tag in the view, using the host-version reader. Unreadable
// tags are logged and skipped without aborting the view.
func (s *Service) coveredElementIDs(
	ctx context.Context,
	log *zap.Logger,
	doc domain.Document,
	view domain.View,
	reader domain.TaggedElementReader,
) (map[int64]struct{}, error) {
	tags, err := doc.TagsInView(ctx, view.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing tags in view %s: %w", view.Name, err)
	}

	covered := make(map[int64]struct{})
	for _, tag := range tags {
		ids, err := reader.CoveredElementIDs(tag)
		if err != nil {
			log.Warn("skipping unreadable tag", zap.Int64("tag_id", tag.ID), zap.Error(err))
			continue
		}
		for _, id := range ids {
			covered[id] = struct{}{}
		}
	}
	return covered, nil
}

// tagElement runs the per-element decision sequence for one view: skip when
// already covered, when hidden, or when the bounding box is missing; prompt
// once per category without a loaded tag family; create the tag and discard
// it again when the blank-tag check is on and the text came back empty.
func (s *Service) tagElement(
	ctx context.Context,
	log *zap.Logger,
	doc domain.Document,
	view domain.View,
	element domain.Element,
	covered map[int64]struct{},
	state *runState,
) (domain.ElementOutcome, error) {
	if _, ok := covered[element.ID]; ok {
		return domain.OutcomeSkippedAlreadyTagged, nil
	}

	if s.settings.CheckVisibility {
		visible, err := s.isVisibleInView(ctx, doc, view, element)
		if err != nil {
			return domain.OutcomeFailed, fmt.Errorf("failed to check visibility: %w", err)
		}
		if !visible {
			return domain.OutcomeSkippedNotVisible, nil
		}
	}

	if _, approved := state.ignoredCategories[element.CategoryID]; !approved {
		loaded, err := doc.TagFamilyLoaded(ctx, element.CategoryID)
		if err != nil {
			return domain.OutcomeFailed, fmt.Errorf("failed to check tag family: %w", err)
		}
		if !loaded {
			keepGoing, err := s.prompter.ConfirmContinue(fmt.Sprintf(
				"No tag type loaded for category: %s\nDo you want to continue anyway?",
				element.CategoryName))
			if err != nil {
				return domain.OutcomeFailed, fmt.Errorf("failed to confirm missing tag family: %w", err)
			}
			if !keepGoing {
				return domain.OutcomeFailed, shared.ErrRunAborted
			}
			// No further prompts for this category this run.
			state.ignoredCategories[element.CategoryID] = struct{}{}
		}
	}

	center, ok := element.CenterPoint()
	if !ok {
		return domain.OutcomeSkippedNoBoundingBox, nil
	}

	placement := domain.PlacementFor(element, view, s.settings, center)
	tag, err := doc.CreateTag(ctx, placement)
	if err != nil {
		return domain.OutcomeFailed, fmt.Errorf("failed to create tag: %w", err)
	}

	if s.settings.CheckBlankTag && strings.TrimSpace(tag.Text) == "" {
		if err := doc.DeleteTag(ctx, tag.ID); err != nil {
			return domain.OutcomeFailed, fmt.Errorf("failed to delete blank tag %d: %w", tag.ID, err)
		}
		log.Debug("deleted blank tag",
			zap.Int64("tag_id", tag.ID),
			zap.Int64("element_id", element.ID))
		return domain.OutcomeTaggedThenDeleted, nil
	}

	return domain.OutcomeTagged, nil
}

// isVisibleInView reports whether the element appears in the view's own
// element collection for its category.
func (s *Service) isVisibleInView(ctx context.Context, doc domain.Document, view domain.View, element domain.Element) (bool, error) {
	ids, err := doc.ViewElementIDs(ctx, view.ID, element.CategoryID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == element.ID {
			return true, nil
		}
	}
	return false, nil
}
