package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Torchit1/Speed-Draft/internal/domain/shared"
	tagging "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/persistence"
)

func newTestStore(t *testing.T) *persistence.ProjectStore {
	t.Helper()
	store, err := persistence.Create(":memory:", 2024, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustCategory(t *testing.T, store *persistence.ProjectStore, name string, bound, loaded bool) tagging.Category {
	t.Helper()
	category, err := store.InsertCategory(context.Background(), name, bound, loaded)
	require.NoError(t, err)
	return category
}

func mustElement(t *testing.T, store *persistence.ProjectStore, categoryID int64, box *tagging.BoundingBox) tagging.Element {
	t.Helper()
	element, err := store.InsertElement(context.Background(), categoryID, box)
	require.NoError(t, err)
	return element
}

func mustView(t *testing.T, store *persistence.ProjectStore, name string, viewType tagging.ViewType) tagging.View {
	t.Helper()
	view, err := store.InsertView(context.Background(), name, viewType, false)
	require.NoError(t, err)
	return view
}

func unitBox() *tagging.BoundingBox {
	return &tagging.BoundingBox{
		Min: tagging.XYZ{X: 0, Y: 0, Z: 0},
		Max: tagging.XYZ{X: 2, Y: 2, Z: 2},
	}
}

func TestOpen_UninitializedProject(t *testing.T) {
	_, err := persistence.Open(":memory:", nil)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNINITIALIZED_PROJECT", domainErr.Code)
}

func TestCreate_SetsHostVersion(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, 2024, store.HostVersion())
}

func TestProjectStore_Categories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCategory(t, store, "Doors", true, true)
	mustCategory(t, store, "Lines", false, false)

	categories, err := store.Categories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Doors", categories[0].Name)
	assert.True(t, categories[0].AllowsBoundParameters)
	assert.Equal(t, "Lines", categories[1].Name)
	assert.False(t, categories[1].AllowsBoundParameters)
}

func TestProjectStore_ElementsByCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	windows := mustCategory(t, store, "Windows", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	mustElement(t, store, windows.ID, unitBox())
	noBox := mustElement(t, store, doors.ID, nil)

	elements, err := store.ElementsByCategory(ctx, doors.ID)

	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, door.ID, elements[0].ID)
	assert.Equal(t, "Doors", elements[0].CategoryName)
	require.NotNil(t, elements[0].Box)
	assert.Equal(t, tagging.XYZ{X: 1, Y: 1, Z: 1}, elements[0].Box.Center())
	assert.Equal(t, noBox.ID, elements[1].ID)
	assert.Nil(t, elements[1].Box)
}

func TestProjectStore_ElementsByCategory_UnknownCategory(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ElementsByCategory(context.Background(), 99)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProjectStore_ViewElementIDs_FiltersByCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	windows := mustCategory(t, store, "Windows", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	window := mustElement(t, store, windows.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)
	require.NoError(t, store.SetViewElements(ctx, plan.ID, []int64{door.ID, window.ID}))

	ids, err := store.ViewElementIDs(ctx, plan.ID, doors.ID)

	require.NoError(t, err)
	assert.Equal(t, []int64{door.ID}, ids)
}

func TestProjectStore_TagsInView(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	door1 := mustElement(t, store, doors.ID, unitBox())
	door2 := mustElement(t, store, doors.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)
	other := mustView(t, store, "Level 2", tagging.ViewTypeFloorPlan)
	_, err := store.InsertExistingTag(ctx, plan.ID, "Doors-1", []int64{door1.ID, door2.ID})
	require.NoError(t, err)
	_, err = store.InsertExistingTag(ctx, other.ID, "Doors-2", []int64{door2.ID})
	require.NoError(t, err)

	tags, err := store.TagsInView(ctx, plan.ID)

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Doors-1", tags[0].Text)
	assert.Equal(t, []int64{door1.ID, door2.ID}, tags[0].ElementIDs)
}

func TestProjectStore_TagsInView_Empty(t *testing.T) {
	store := newTestStore(t)
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)

	tags, err := store.TagsInView(context.Background(), plan.ID)

	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestProjectStore_CreateTag_TextFromLoadedFamily(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)

	placement := tagging.PlacementFor(door, plan, tagging.ToggleSettings{}, door.Box.Center())
	tag, err := store.CreateTag(ctx, placement)

	require.NoError(t, err)
	assert.Equal(t, "Doors-1", tag.Text)
	assert.Equal(t, plan.ID, tag.ViewID)
	assert.Equal(t, []int64{door.ID}, tag.ElementIDs)

	tags, err := store.TagsInView(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.ID, tags[0].ID)
}

func TestProjectStore_CreateTag_BlankWithoutFamily(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	furniture := mustCategory(t, store, "Furniture", true, false)
	chair := mustElement(t, store, furniture.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)

	placement := tagging.PlacementFor(chair, plan, tagging.ToggleSettings{}, chair.Box.Center())
	tag, err := store.CreateTag(ctx, placement)

	require.NoError(t, err)
	assert.Equal(t, "", tag.Text)
}

func TestProjectStore_CreateTag_RejectsUnsupportedMode(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateTag(context.Background(), tagging.TagPlacement{
		ViewID:    1,
		ElementID: 1,
		Mode:      tagging.TagModeAddByMaterial,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNSUPPORTED_TAG_MODE", domainErr.Code)
}

func TestProjectStore_DeleteTag(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)
	tag, err := store.CreateTag(ctx, tagging.PlacementFor(door, plan, tagging.ToggleSettings{}, door.Box.Center()))
	require.NoError(t, err)

	require.NoError(t, store.DeleteTag(ctx, tag.ID))

	tags, err := store.TagsInView(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	assert.ErrorIs(t, store.DeleteTag(ctx, tag.ID), shared.ErrNotFound)
}

func TestProjectStore_InTransaction_RollbackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)

	wantErr := errors.New("abort")
	err := store.InTransaction(ctx, func(ctx context.Context, doc tagging.Document) error {
		_, err := doc.CreateTag(ctx, tagging.PlacementFor(door, plan, tagging.ToggleSettings{}, door.Box.Center()))
		require.NoError(t, err)
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	tags, err := store.TagsInView(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestProjectStore_InTransaction_Commit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	doors := mustCategory(t, store, "Doors", true, true)
	door := mustElement(t, store, doors.ID, unitBox())
	plan := mustView(t, store, "Level 1", tagging.ViewTypeFloorPlan)

	err := store.InTransaction(ctx, func(ctx context.Context, doc tagging.Document) error {
		_, err := doc.CreateTag(ctx, tagging.PlacementFor(door, plan, tagging.ToggleSettings{}, door.Box.Center()))
		return err
	})

	require.NoError(t, err)
	tags, err := store.TagsInView(ctx, plan.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
