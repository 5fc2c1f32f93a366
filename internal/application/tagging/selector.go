package tagging

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

// selectCategories presents the allow-listed categories present in the
// project that support bound parameters and returns the chosen ones. The
// second return value reports user cancellation.
func (s *Service) selectCategories(ctx context.Context, log *zap.Logger) ([]domain.Category, bool, error) {
	categories, err := s.doc.Categories(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list project categories: %w", err)
	}

	allowed := make(map[string]struct{}, len(s.allowList))
	for _, name := range s.allowList {
		allowed[name] = struct{}{}
	}

	// Names can repeat across a project; every category carrying a chosen
	// name is selected.
	byName := make(map[string][]domain.Category)
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		if _, ok := allowed[category.Name]; !ok || !category.Taggable() {
			continue
		}
		if _, seen := byName[category.Name]; !seen {
			names = append(names, category.Name)
		}
		byName[category.Name] = append(byName[category.Name], category)
	}

	selection, err := s.prompter.SelectFromList("Select Categories to Tag", "Select", names)
	if err != nil {
		return nil, false, fmt.Errorf("failed to select categories: %w", err)
	}
	if selection.Cancelled() {
		return nil, true, nil
	}

	chosen := make([]domain.Category, 0, len(selection.Names))
	for _, name := range selection.Names {
		chosen = append(chosen, byName[name]...)
	}
	log.Info("categories selected", zap.Strings("categories", selection.Names))
	return chosen, false, nil
}

// selectViews presents the non-template plan, elevation and section views,
// names sorted lexicographically, and returns the chosen ones.
func (s *Service) selectViews(ctx context.Context, log *zap.Logger) ([]domain.View, bool, error) {
	views, err := s.doc.Views(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list project views: %w", err)
	}

	byName := make(map[string][]domain.View)
	names := make([]string, 0, len(views))
	for _, view := range views {
		if !view.Taggable() {
			continue
		}
		if _, seen := byName[view.Name]; !seen {
			names = append(names, view.Name)
		}
		byName[view.Name] = append(byName[view.Name], view)
	}
	sort.Strings(names)

	selection, err := s.prompter.SelectFromList("Select Views", "Select", names)
	if err != nil {
		return nil, false, fmt.Errorf("failed to select views: %w", err)
	}
	if selection.Cancelled() {
		return nil, true, nil
	}

	chosen := make([]domain.View, 0, len(selection.Names))
	for _, name := range selection.Names {
		chosen = append(chosen, byName[name]...)
	}
	log.Info("views selected", zap.Strings("views", selection.Names))
	return chosen, false, nil
}
