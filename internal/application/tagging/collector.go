package tagging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

// collectElements gathers the placed elements of each selected category,
// caching them per category in the run state and returning the flat list in
// category order. A pure read; filtering happens later per view.
func (s *Service) collectElements(ctx context.Context, log *zap.Logger, categories []domain.Category, state *runState) ([]domain.Element, error) {
	var all []domain.Element
	for _, category := range categories {
		elements, err := s.doc.ElementsByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to collect elements of category %s: %w", category.Name, err)
		}
		state.elementCache[category.ID] = elements
		all = append(all, elements...)

		ids := make([]int64, 0, len(elements))
		for _, element := range elements {
			ids = append(ids, element.ID)
		}
		log.Info("collected elements",
			zap.String("category", category.Name),
			zap.Int("count", len(elements)),
			zap.Int64s("element_ids", ids))
	}
	return all, nil
}
