package tagging

import "context"

// Document is the host-document capability surface the tagging run drives.
// It covers exactly the query and mutation operations the run needs; the
// decision logic never touches the host through any other path, so it can be
// exercised against a fake in tests.
type Document interface {
	// HostVersion returns the host application's major version number.
	// It decides how existing tag associations are read.
	HostVersion() int

	// Categories returns every category present in the project
	Categories(ctx context.Context) ([]Category, error)

	// ElementsByCategory returns the placed (non-type) elements of a category
	ElementsByCategory(ctx context.Context, categoryID int64) ([]Element, error)

	// Views returns every view in the project, templates included
	Views(ctx context.Context) ([]View, error)

	// ViewElementIDs returns the identifiers of the elements of a category
	// that appear in the view's own element collection. An element missing
	// from this set is not graphically visible in the view.
	ViewElementIDs(ctx context.Context, viewID, categoryID int64) ([]int64, error)

	// TagsInView returns the annotation tags already created in a view
	TagsInView(ctx context.Context, viewID int64) ([]Tag, error)

	// TagFamilyLoaded reports whether a tag definition is loaded for the
	// category, a precondition for the host to instantiate tags for it.
	TagFamilyLoaded(ctx context.Context, categoryID int64) (bool, error)

	// CreateTag creates an annotation tag per the placement request and
	// returns it with the text the host derived from the element.
	CreateTag(ctx context.Context, placement TagPlacement) (*Tag, error)

	// DeleteTag removes a tag, used to discard a just-created blank tag
	DeleteTag(ctx context.Context, tagID int64) error
}

// Transactor runs a function against the document inside one host
// transaction. The transaction commits when fn returns nil and rolls back
// every mutation when fn returns an error.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context, doc Document) error) error
}
