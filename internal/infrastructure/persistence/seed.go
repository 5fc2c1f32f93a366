package persistence

import (
	"context"
	"fmt"

	tagging "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

// Insert helpers populate a project document. They are used by the seed
// command and by tests; a tagging run itself never calls them.

// InsertCategory adds a category to the project
func (s *ProjectStore) InsertCategory(ctx context.Context, name string, allowsBoundParameters, tagFamilyLoaded bool) (tagging.Category, error) {
	row := categoryModel{
		Name:                  name,
		AllowsBoundParameters: allowsBoundParameters,
		TagFamilyLoaded:       tagFamilyLoaded,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return tagging.Category{}, fmt.Errorf("failed to insert category %s: %w", name, err)
	}
	return row.ToDomain(), nil
}

// InsertElement adds a placed element to the project. box may be nil for
// elements the host reports no bounding box for.
func (s *ProjectStore) InsertElement(ctx context.Context, categoryID int64, box *tagging.BoundingBox) (tagging.Element, error) {
	category, err := s.categoryByID(ctx, categoryID)
	if err != nil {
		return tagging.Element{}, err
	}

	row := elementModel{CategoryID: categoryID}
	if box != nil {
		row.HasBoundingBox = true
		row.MinX, row.MinY, row.MinZ = box.Min.X, box.Min.Y, box.Min.Z
		row.MaxX, row.MaxY, row.MaxZ = box.Max.X, box.Max.Y, box.Max.Z
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return tagging.Element{}, fmt.Errorf("failed to insert element: %w", err)
	}
	return row.ToDomain(category.Name), nil
}

// InsertView adds a view to the project
func (s *ProjectStore) InsertView(ctx context.Context, name string, viewType tagging.ViewType, isTemplate bool) (tagging.View, error) {
	row := viewModel{
		Name:       name,
		ViewType:   viewType.String(),
		IsTemplate: isTemplate,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return tagging.View{}, fmt.Errorf("failed to insert view %s: %w", name, err)
	}
	return row.ToDomain(), nil
}

// SetViewElements records the elements appearing in a view's own element
// collection, replacing any earlier set for the view.
func (s *ProjectStore) SetViewElements(ctx context.Context, viewID int64, elementIDs []int64) error {
	if err := s.db.WithContext(ctx).
		Where("view_id = ?", viewID).
		Delete(&viewElementModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear view elements: %w", err)
	}

	for _, elementID := range elementIDs {
		row := viewElementModel{ViewID: viewID, ElementID: elementID}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert view element: %w", err)
		}
	}
	return nil
}

// InsertExistingTag adds a pre-existing tag referencing the given elements,
// as a document saved by an earlier session would contain.
func (s *ProjectStore) InsertExistingTag(ctx context.Context, viewID int64, text string, elementIDs []int64) (tagging.Tag, error) {
	row := tagModel{
		ViewID:      viewID,
		Text:        text,
		Mode:        tagging.TagModeAddByCategory.String(),
		Orientation: tagging.TagOrientationHorizontal.String(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return tagging.Tag{}, fmt.Errorf("failed to insert tag: %w", err)
	}

	for _, elementID := range elementIDs {
		ref := tagElementRefModel{TagID: row.ID, ElementID: elementID}
		if err := s.db.WithContext(ctx).Create(&ref).Error; err != nil {
			return tagging.Tag{}, fmt.Errorf("failed to insert tag element ref: %w", err)
		}
	}

	return tagging.Tag{ID: row.ID, ViewID: viewID, Text: text, ElementIDs: elementIDs}, nil
}
