package tagging

// ViewType represents the kind of projection a drawing view shows
type ViewType string

const (
	ViewTypeFloorPlan   ViewType = "FLOOR_PLAN"
	ViewTypeCeilingPlan ViewType = "CEILING_PLAN"
	ViewTypeElevation   ViewType = "ELEVATION"
	ViewTypeSection     ViewType = "SECTION"
	ViewTypeThreeD      ViewType = "THREE_D"
	ViewTypeDrafting    ViewType = "DRAFTING"
	ViewTypeSchedule    ViewType = "SCHEDULE"
)

// IsValid checks if the ViewType is a valid value
func (t ViewType) IsValid() bool {
	switch t {
	case ViewTypeFloorPlan, ViewTypeCeilingPlan, ViewTypeElevation,
		ViewTypeSection, ViewTypeThreeD, ViewTypeDrafting, ViewTypeSchedule:
		return true
	}
	return false
}

// String returns the string representation of ViewType
func (t ViewType) String() string {
	return string(t)
}

// SupportsTagging reports whether views of this type accept annotation tags.
// Only plans, elevations and sections are offered for batch tagging.
func (t ViewType) SupportsTagging() bool {
	switch t {
	case ViewTypeFloorPlan, ViewTypeElevation, ViewTypeSection:
		return true
	}
	return false
}

// AllViewTypes returns all valid ViewType values
func AllViewTypes() []ViewType {
	return []ViewType{
		ViewTypeFloorPlan, ViewTypeCeilingPlan, ViewTypeElevation,
		ViewTypeSection, ViewTypeThreeD, ViewTypeDrafting, ViewTypeSchedule,
	}
}

// TagMode represents how the host resolves the tag definition for a new tag
type TagMode string

const (
	TagModeAddByCategory      TagMode = "ADD_BY_CATEGORY"
	TagModeAddByMaterial      TagMode = "ADD_BY_MATERIAL"
	TagModeAddByMultiCategory TagMode = "ADD_BY_MULTI_CATEGORY"
)

// IsValid checks if the TagMode is a valid value
func (m TagMode) IsValid() bool {
	switch m {
	case TagModeAddByCategory, TagModeAddByMaterial, TagModeAddByMultiCategory:
		return true
	}
	return false
}

// String returns the string representation of TagMode
func (m TagMode) String() string {
	return string(m)
}

// TagOrientation represents the on-sheet orientation of a tag's text
type TagOrientation string

const (
	TagOrientationHorizontal TagOrientation = "HORIZONTAL"
	TagOrientationVertical   TagOrientation = "VERTICAL"
)

// IsValid checks if the TagOrientation is a valid value
func (o TagOrientation) IsValid() bool {
	switch o {
	case TagOrientationHorizontal, TagOrientationVertical:
		return true
	}
	return false
}

// String returns the string representation of TagOrientation
func (o TagOrientation) String() string {
	return string(o)
}

// ElementOutcome is the terminal state of one element in one view during a run
type ElementOutcome string

const (
	OutcomeTagged               ElementOutcome = "TAGGED"
	OutcomeTaggedThenDeleted    ElementOutcome = "TAGGED_THEN_DELETED"
	OutcomeSkippedAlreadyTagged ElementOutcome = "SKIPPED_ALREADY_TAGGED"
	OutcomeSkippedNotVisible    ElementOutcome = "SKIPPED_NOT_VISIBLE"
	OutcomeSkippedNoBoundingBox ElementOutcome = "SKIPPED_NO_BOUNDING_BOX"
	OutcomeFailed               ElementOutcome = "FAILED"
)

// IsValid checks if the ElementOutcome is a valid value
func (o ElementOutcome) IsValid() bool {
	switch o {
	case OutcomeTagged, OutcomeTaggedThenDeleted, OutcomeSkippedAlreadyTagged,
		OutcomeSkippedNotVisible, OutcomeSkippedNoBoundingBox, OutcomeFailed:
		return true
	}
	return false
}

// String returns the string representation of ElementOutcome
func (o ElementOutcome) String() string {
	return string(o)
}
