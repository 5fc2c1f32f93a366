package tagging

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Torchit1/Speed-Draft/internal/domain/shared"
	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/console"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/logger"
)

// Service orchestrates a tagging run: category selection, element
// collection, view selection and per-view tagging inside one transaction.
type Service struct {
	doc       domain.Document
	tx        domain.Transactor
	prompter  console.Prompter
	allowList []string
	settings  domain.ToggleSettings
	logger    *zap.Logger
}

// NewService creates a new tagging Service. allowList is the configured set
// of taggable category names; settings are the per-run toggles.
func NewService(
	doc domain.Document,
	tx domain.Transactor,
	prompter console.Prompter,
	allowList []string,
	settings domain.ToggleSettings,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		doc:       doc,
		tx:        tx,
		prompter:  prompter,
		allowList: allowList,
		settings:  settings,
		logger:    logger,
	}
}

// runState is the mutable state of one run, threaded explicitly through the
// stages so repeated runs cannot leak approvals or cached elements into each
// other.
type runState struct {
	ignoredCategories map[int64]struct{}
	elementCache      map[int64][]domain.Element
	report            *RunReport
}

func newRunState(runID uuid.UUID, hostVersion int) *runState {
	return &runState{
		ignoredCategories: make(map[int64]struct{}),
		elementCache:      make(map[int64][]domain.Element),
		report:            &RunReport{RunID: runID, HostVersion: hostVersion},
	}
}

// Run executes one tagging session. A nil report with a nil error means the
// user cancelled a selection or aborted the run; nothing was changed.
func (s *Service) Run(ctx context.Context) (*RunReport, error) {
	runID := uuid.New()
	ctx, log := logger.WithRunID(ctx, s.logger, runID.String())

	categories, cancelled, err := s.selectCategories(ctx, log)
	if err != nil {
		return nil, err
	}
	if cancelled {
		log.Debug("category selection cancelled")
		return nil, nil
	}

	state := newRunState(runID, s.doc.HostVersion())
	elements, err := s.collectElements(ctx, log, categories, state)
	if err != nil {
		return nil, err
	}

	views, cancelled, err := s.selectViews(ctx, log)
	if err != nil {
		return nil, err
	}
	if cancelled {
		log.Debug("view selection cancelled")
		return nil, nil
	}

	state.report.Views = len(views)
	state.report.Elements = len(elements)
	if len(elements) == 0 || len(views) == 0 {
		log.Info("nothing to tag",
			zap.Int("elements", len(elements)),
			zap.Int("views", len(views)))
		return state.report, nil
	}

	reader := domain.ReaderForHostVersion(s.doc.HostVersion())
	log.Info("starting tagging run",
		zap.Int("host_version", s.doc.HostVersion()),
		zap.String("tag_reader", reader.Name()),
		zap.Int("elements", len(elements)),
		zap.Int("views", len(views)))

	bar := s.prompter.StartProgress("Tagging elements", len(elements))
	defer bar.Done()

	err = s.tx.InTransaction(ctx, func(ctx context.Context, doc domain.Document) error {
		for _, view := range views {
			if err := s.tagView(ctx, log, doc, view, elements, reader, bar, state); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrRunAborted) {
			log.Info("run aborted by user, all created tags rolled back")
			return nil, nil
		}
		return nil, fmt.Errorf("tagging transaction failed: %w", err)
	}

	log.Info("tagging run committed",
		zap.Int("tagged", state.report.Tagged),
		zap.Int("deleted_blank", state.report.DeletedBlank),
		zap.Int("failed", state.report.Failed))
	return state.report, nil
}
