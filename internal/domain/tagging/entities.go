package tagging

// Category identifies a class of model elements (doors, windows, ...).
// Instances are snapshots of host-owned state; the host assigns the IDs.
type Category struct {
	ID                    int64
	Name                  string
	AllowsBoundParameters bool
}

// Taggable reports whether elements of this category can carry a tag.
// Categories without bound parameter support have nothing for a tag to read.
func (c Category) Taggable() bool {
	return c.AllowsBoundParameters
}

// Element is a placed model object belonging to one category.
// Box is nil when the host reports no bounding box for the element.
type Element struct {
	ID           int64
	CategoryID   int64
	CategoryName string
	Box          *BoundingBox
}

// CenterPoint returns the projected center of the element's bounding box.
// The second return value is false when the element has no bounding box.
func (e Element) CenterPoint() (XYZ, bool) {
	if e.Box == nil {
		return XYZ{}, false
	}
	return e.Box.Center(), true
}

// View is a 2D projection of the model owning a set of annotation tags.
type View struct {
	ID         int64
	Name       string
	Type       ViewType
	IsTemplate bool
}

// Taggable reports whether the view can be offered for batch tagging.
// Templates are settings presets, not placeable views.
func (v View) Taggable() bool {
	return !v.IsTemplate && v.Type.SupportsTagging()
}

// Tag is an annotation bound to one or more elements within exactly one view.
// Older hosts expose only a single tagged element per tag; on those documents
// ElementIDs holds exactly one entry.
type Tag struct {
	ID         int64
	ViewID     int64
	Text       string
	ElementIDs []int64
}
