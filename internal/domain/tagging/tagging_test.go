package tagging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torchit1/Speed-Draft/internal/domain/tagging"
)

func TestBoundingBox_Center(t *testing.T) {
	box := tagging.BoundingBox{
		Min: tagging.XYZ{X: 0, Y: -2, Z: 10},
		Max: tagging.XYZ{X: 4, Y: 6, Z: 10},
	}

	center := box.Center()

	assert.Equal(t, tagging.XYZ{X: 2, Y: 2, Z: 10}, center)
}

func TestElement_CenterPoint_NoBoundingBox(t *testing.T) {
	element := tagging.Element{ID: 1, CategoryID: 2, CategoryName: "Doors"}

	_, ok := element.CenterPoint()

	assert.False(t, ok)
}

func TestElement_CenterPoint_WithBoundingBox(t *testing.T) {
	element := tagging.Element{
		ID:           1,
		CategoryID:   2,
		CategoryName: "Doors",
		Box: &tagging.BoundingBox{
			Min: tagging.XYZ{X: 1, Y: 1, Z: 1},
			Max: tagging.XYZ{X: 3, Y: 5, Z: 9},
		},
	}

	center, ok := element.CenterPoint()

	require.True(t, ok)
	assert.Equal(t, tagging.XYZ{X: 2, Y: 3, Z: 5}, center)
}

func TestCategory_Taggable(t *testing.T) {
	assert.True(t, tagging.Category{Name: "Doors", AllowsBoundParameters: true}.Taggable())
	assert.False(t, tagging.Category{Name: "Lines"}.Taggable())
}

func TestView_Taggable(t *testing.T) {
	tests := []struct {
		name     string
		view     tagging.View
		taggable bool
	}{
		{"floor plan", tagging.View{Name: "Level 1", Type: tagging.ViewTypeFloorPlan}, true},
		{"ceiling plan", tagging.View{Name: "RCP", Type: tagging.ViewTypeCeilingPlan}, false},
		{"elevation", tagging.View{Name: "East", Type: tagging.ViewTypeElevation}, true},
		{"section", tagging.View{Name: "A-A", Type: tagging.ViewTypeSection}, true},
		{"3d", tagging.View{Name: "Axon", Type: tagging.ViewTypeThreeD}, false},
		{"drafting", tagging.View{Name: "Detail", Type: tagging.ViewTypeDrafting}, false},
		{"template", tagging.View{Name: "Plan Template", Type: tagging.ViewTypeFloorPlan, IsTemplate: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.taggable, tt.view.Taggable())
		})
	}
}

func TestPlacementFor_WindowInFloorPlanGetsLeader(t *testing.T) {
	window := tagging.Element{ID: 21, CategoryID: 2, CategoryName: "Windows"}
	plan := tagging.View{ID: 100, Name: "Level 1", Type: tagging.ViewTypeFloorPlan}
	settings := tagging.ToggleSettings{TagWindowsInPlan: true}
	point := tagging.XYZ{X: 1, Y: 2, Z: 3}

	placement := tagging.PlacementFor(window, plan, settings, point)

	assert.True(t, placement.Leader)
	assert.Equal(t, window.ID, placement.ElementID)
	assert.Equal(t, plan.ID, placement.ViewID)
	assert.Equal(t, point, placement.Point)
	assert.Equal(t, tagging.TagModeAddByCategory, placement.Mode)
	assert.Equal(t, tagging.TagOrientationHorizontal, placement.Orientation)
}

func TestPlacementFor_NoLeaderCases(t *testing.T) {
	window := tagging.Element{ID: 21, CategoryID: 2, CategoryName: "Windows"}
	door := tagging.Element{ID: 11, CategoryID: 1, CategoryName: "Doors"}
	plan := tagging.View{ID: 100, Name: "Level 1", Type: tagging.ViewTypeFloorPlan}
	elevation := tagging.View{ID: 102, Name: "East", Type: tagging.ViewTypeElevation}
	point := tagging.XYZ{}

	tests := []struct {
		name     string
		element  tagging.Element
		view     tagging.View
		settings tagging.ToggleSettings
	}{
		{"toggle off", window, plan, tagging.ToggleSettings{}},
		{"window outside plan", window, elevation, tagging.ToggleSettings{TagWindowsInPlan: true}},
		{"non-window in plan", door, plan, tagging.ToggleSettings{TagWindowsInPlan: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement := tagging.PlacementFor(tt.element, tt.view, tt.settings, point)
			assert.False(t, placement.Leader)
		})
	}
}

func TestReaderForHostVersion_Selection(t *testing.T) {
	assert.Equal(t, "single-element", tagging.ReaderForHostVersion(2019).Name())
	assert.Equal(t, "single-element", tagging.ReaderForHostVersion(2021).Name())
	assert.Equal(t, "multi-element", tagging.ReaderForHostVersion(2022).Name())
	assert.Equal(t, "multi-element", tagging.ReaderForHostVersion(2025).Name())
}

func TestSingleElementReader_FirstReferenceOnly(t *testing.T) {
	reader := tagging.ReaderForHostVersion(2019)
	tag := tagging.Tag{ID: 5, ElementIDs: []int64{11, 12, 13}}

	ids, err := reader.CoveredElementIDs(tag)

	require.NoError(t, err)
	assert.Equal(t, []int64{11}, ids)
}

func TestMultiElementReader_AllReferences(t *testing.T) {
	reader := tagging.ReaderForHostVersion(2024)
	tag := tagging.Tag{ID: 5, ElementIDs: []int64{11, 12, 13}}

	ids, err := reader.CoveredElementIDs(tag)

	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12, 13}, ids)
}

func TestReaders_DanglingTag(t *testing.T) {
	tag := tagging.Tag{ID: 5}

	for _, version := range []int{2019, 2024} {
		_, err := tagging.ReaderForHostVersion(version).CoveredElementIDs(tag)
		assert.Error(t, err)
	}
}

func TestViewType_IsValid(t *testing.T) {
	for _, vt := range tagging.AllViewTypes() {
		assert.True(t, vt.IsValid())
	}
	assert.False(t, tagging.ViewType("PERSPECTIVE").IsValid())
}
