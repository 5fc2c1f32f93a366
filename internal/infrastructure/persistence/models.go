package persistence

import (
	tagging "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

// projectInfoModel stores document-level facts, one row per project file
type projectInfoModel struct {
	ID          int64 `gorm:"primaryKey"`
	HostVersion int   `gorm:"not null"`
}

func (projectInfoModel) TableName() string { return "project_info" }

// categoryModel maps the project's element categories
type categoryModel struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement"`
	Name                  string `gorm:"uniqueIndex;not null"`
	AllowsBoundParameters bool   `gorm:"not null"`
	TagFamilyLoaded       bool   `gorm:"not null"`
}

func (categoryModel) TableName() string { return "categories" }

// ToDomain converts categoryModel to a domain Category
func (m categoryModel) ToDomain() tagging.Category {
	return tagging.Category{
		ID:                    m.ID,
		Name:                  m.Name,
		AllowsBoundParameters: m.AllowsBoundParameters,
	}
}

// elementModel maps placed model elements. Bounding box columns are only
// meaningful when HasBoundingBox is set.
type elementModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CategoryID     int64 `gorm:"index;not null"`
	HasBoundingBox bool  `gorm:"not null"`
	MinX           float64
	MinY           float64
	MinZ           float64
	MaxX           float64
	MaxY           float64
	MaxZ           float64
}

func (elementModel) TableName() string { return "elements" }

// ToDomain converts elementModel to a domain Element
func (m elementModel) ToDomain(categoryName string) tagging.Element {
	element := tagging.Element{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		CategoryName: categoryName,
	}
	if m.HasBoundingBox {
		element.Box = &tagging.BoundingBox{
			Min: tagging.XYZ{X: m.MinX, Y: m.MinY, Z: m.MinZ},
			Max: tagging.XYZ{X: m.MaxX, Y: m.MaxY, Z: m.MaxZ},
		}
	}
	return element
}

// viewModel maps the project's drawing views
type viewModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"uniqueIndex;not null"`
	ViewType   string `gorm:"not null"`
	IsTemplate bool   `gorm:"not null"`
}

func (viewModel) TableName() string { return "views" }

// ToDomain converts viewModel to a domain View
func (m viewModel) ToDomain() tagging.View {
	return tagging.View{
		ID:         m.ID,
		Name:       m.Name,
		Type:       tagging.ViewType(m.ViewType),
		IsTemplate: m.IsTemplate,
	}
}

// viewElementModel records which elements appear in a view's own element
// collection; an element absent from this set is not visible in the view.
type viewElementModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ViewID    int64 `gorm:"index;not null"`
	ElementID int64 `gorm:"index;not null"`
}

func (viewElementModel) TableName() string { return "view_elements" }

// tagModel maps annotation tags placed in views
type tagModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ViewID      int64 `gorm:"index;not null"`
	Text        string
	Leader      bool
	Mode        string
	Orientation string
	X           float64
	Y           float64
	Z           float64
}

func (tagModel) TableName() string { return "tags" }

// tagElementRefModel records the elements a tag references
type tagElementRefModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	TagID     int64 `gorm:"index;not null"`
	ElementID int64 `gorm:"index;not null"`
}

func (tagElementRefModel) TableName() string { return "tag_element_refs" }
