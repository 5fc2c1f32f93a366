package tagging

// ToggleSettings is the immutable-per-run tagging configuration.
type ToggleSettings struct {
	// CheckVisibility skips elements not graphically visible in the view
	CheckVisibility bool
	// CheckBlankTag deletes a freshly created tag whose text is blank
	CheckBlankTag bool
	// TagWindowsInPlan places window tags in floor plans with a leader
	TagWindowsInPlan bool
}

// TagPlacement describes one tag creation request against the host.
type TagPlacement struct {
	ViewID      int64
	ElementID   int64
	Leader      bool
	Mode        TagMode
	Orientation TagOrientation
	Point       XYZ
}

// windowsCategoryName is the host's name for the window category, the one
// category with special leader handling in floor plans.
const windowsCategoryName = "Windows"

// PlacementFor builds the placement request for tagging element in view at
// the given point. Windows in a floor plan get a leader when the
// TagWindowsInPlan toggle is on; every other combination places a plain
// horizontal tag resolved by category.
func PlacementFor(element Element, view View, settings ToggleSettings, point XYZ) TagPlacement {
	leader := settings.TagWindowsInPlan &&
		element.CategoryName == windowsCategoryName &&
		view.Type == ViewTypeFloorPlan
	return TagPlacement{
		ViewID:      view.ID,
		ElementID:   element.ID,
		Leader:      leader,
		Mode:        TagModeAddByCategory,
		Orientation: TagOrientationHorizontal,
		Point:       point,
	}
}
