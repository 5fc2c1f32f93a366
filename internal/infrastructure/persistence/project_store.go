package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Torchit1/Speed-Draft/internal/domain/shared"
	tagging "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/logger"
)

// ProjectStore is the SQLite-backed project document. It implements the
// tagging Document and Transactor ports.
type ProjectStore struct {
	db          *gorm.DB
	hostVersion int
}

// Close closes the underlying database connection
func (s *ProjectStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// HostVersion returns the host application's major version number
func (s *ProjectStore) HostVersion() int {
	return s.hostVersion
}

// Categories returns every category present in the project
func (s *ProjectStore) Categories(ctx context.Context) ([]tagging.Category, error) {
	var rows []categoryModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]tagging.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.ToDomain())
	}
	return categories, nil
}

// ElementsByCategory returns the placed elements of a category
func (s *ProjectStore) ElementsByCategory(ctx context.Context, categoryID int64) ([]tagging.Element, error) {
	category, err := s.categoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	var rows []elementModel
	if err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list elements of category %d: %w", categoryID, err)
	}

	elements := make([]tagging.Element, 0, len(rows))
	for _, row := range rows {
		elements = append(elements, row.ToDomain(category.Name))
	}
	return elements, nil
}

// Views returns every view in the project, templates included
func (s *ProjectStore) Views(ctx context.Context) ([]tagging.View, error) {
	var rows []viewModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}

	views := make([]tagging.View, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToDomain())
	}
	return views, nil
}

// ViewElementIDs returns the element identifiers of a category that appear
// in the view's own element collection
func (s *ProjectStore) ViewElementIDs(ctx context.Context, viewID, categoryID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Table("view_elements").
		Joins("JOIN elements ON elements.id = view_elements.element_id").
		Where("view_elements.view_id = ? AND elements.category_id = ?", viewID, categoryID).
		Order("view_elements.element_id").
		Pluck("view_elements.element_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list view elements: %w", err)
	}
	return ids, nil
}

// TagsInView returns the annotation tags already created in a view
func (s *ProjectStore) TagsInView(ctx context.Context, viewID int64) ([]tagging.Tag, error) {
	var rows []tagModel
	if err := s.db.WithContext(ctx).
		Where("view_id = ?", viewID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags in view %d: %w", viewID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	tagIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		tagIDs = append(tagIDs, row.ID)
	}

	var refs []tagElementRefModel
	if err := s.db.WithContext(ctx).
		Where("tag_id IN ?", tagIDs).
		Order("id").
		Find(&refs).Error; err != nil {
		return nil, fmt.Errorf("failed to list tag element refs: %w", err)
	}

	refsByTag := make(map[int64][]int64, len(rows))
	for _, ref := range refs {
		refsByTag[ref.TagID] = append(refsByTag[ref.TagID], ref.ElementID)
	}

	tags := make([]tagging.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, tagging.Tag{
			ID:         row.ID,
			ViewID:     row.ViewID,
			Text:       row.Text,
			ElementIDs: refsByTag[row.ID],
		})
	}
	return tags, nil
}

// TagFamilyLoaded reports whether a tag definition is loaded for the category
func (s *ProjectStore) TagFamilyLoaded(ctx context.Context, categoryID int64) (bool, error) {
	category, err := s.categoryByID(ctx, categoryID)
	if err != nil {
		return false, err
	}
	return category.TagFamilyLoaded, nil
}

// CreateTag creates an annotation tag per the placement request. The tag
// text is derived from the element the way the host reads it from the
// element's parameters; without a loaded tag family there is nothing to
// read and the text comes back blank.
func (s *ProjectStore) CreateTag(ctx context.Context, placement tagging.TagPlacement) (*tagging.Tag, error) {
	if placement.Mode != tagging.TagModeAddByCategory {
		return nil, shared.NewDomainError("UNSUPPORTED_TAG_MODE",
			fmt.Sprintf("tag mode %s is not supported", placement.Mode))
	}

	var element elementModel
	if err := s.db.WithContext(ctx).First(&element, "id = ?", placement.ElementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load element %d: %w", placement.ElementID, err)
	}

	var view viewModel
	if err := s.db.WithContext(ctx).First(&view, "id = ?", placement.ViewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load view %d: %w", placement.ViewID, err)
	}

	category, err := s.categoryByID(ctx, element.CategoryID)
	if err != nil {
		return nil, err
	}

	text := ""
	if category.TagFamilyLoaded {
		text = fmt.Sprintf("%s-%d", category.Name, element.ID)
	}

	row := tagModel{
		ViewID:      placement.ViewID,
		Text:        text,
		Leader:      placement.Leader,
		Mode:        placement.Mode.String(),
		Orientation: placement.Orientation.String(),
		X:           placement.Point.X,
		Y:           placement.Point.Y,
		Z:           placement.Point.Z,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	ref := tagElementRefModel{TagID: row.ID, ElementID: element.ID}
	if err := s.db.WithContext(ctx).Create(&ref).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag element ref: %w", err)
	}

	logger.FromContext(ctx).Debug("created tag",
		zap.Int64("tag_id", row.ID),
		zap.Int64("view_id", placement.ViewID),
		zap.Int64("element_id", element.ID),
		zap.Bool("leader", placement.Leader))

	return &tagging.Tag{
		ID:         row.ID,
		ViewID:     placement.ViewID,
		Text:       text,
		ElementIDs: []int64{element.ID},
	}, nil
}

// DeleteTag removes a tag and its element references
func (s *ProjectStore) DeleteTag(ctx context.Context, tagID int64) error {
	if err := s.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Delete(&tagElementRefModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag element refs: %w", err)
	}

	result := s.db.WithContext(ctx).Delete(&tagModel{}, "id = ?", tagID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag %d: %w", tagID, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}

	logger.FromContext(ctx).Debug("deleted tag", zap.Int64("tag_id", tagID))
	return nil
}

// InTransaction runs fn against a transaction-bound store. fn returning an
// error rolls back every mutation it made.
func (s *ProjectStore) InTransaction(ctx context.Context, fn func(ctx context.Context, doc tagging.Document) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &ProjectStore{db: tx, hostVersion: s.hostVersion})
	})
}

// categoryByID loads one category row
func (s *ProjectStore) categoryByID(ctx context.Context, categoryID int64) (*categoryModel, error) {
	var category categoryModel
	if err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load category %d: %w", categoryID, err)
	}
	return &category, nil
}
