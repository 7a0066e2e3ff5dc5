package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasteops/mealweek/pkg/types"
)

func TestAddMenuItem(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddMenuItem(types.MenuItem{
		Name:        "Rice Bowl",
		Description: "Rice, beans, chicken",
		Price:       10.00,
		Category:    "Classic",
		Available:   true,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	// Duplicate name is rejected and the menu is unchanged.
	_, err = s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 12.00})
	assert.ErrorIs(t, err, types.ErrDuplicateName)
	items, err := s.ListMenuItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetMenuItem(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 10.00, Available: true})
	require.NoError(t, err)

	m, err := s.GetMenuItem(id)
	require.NoError(t, err)
	assert.Equal(t, "Rice Bowl", m.Name)
	assert.Equal(t, 10.00, m.Price)
	assert.True(t, m.Available)

	_, err = s.GetMenuItem(9999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListMenuItems_OrderedByName(t *testing.T) {
	s := setupStore(t)

	for _, name := range []string{"Veggie Bowl", "Feijoada", "Rice Bowl"} {
		_, err := s.AddMenuItem(types.MenuItem{Name: name, Price: 10, Available: true})
		require.NoError(t, err)
	}

	items, err := s.ListMenuItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Feijoada", items[0].Name)
	assert.Equal(t, "Rice Bowl", items[1].Name)
	assert.Equal(t, "Veggie Bowl", items[2].Name)
}

func TestListAvailableMenuItems(t *testing.T) {
	s := setupStore(t)

	availID, err := s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 10, Available: true})
	require.NoError(t, err)
	_, err = s.AddMenuItem(types.MenuItem{Name: "Feijoada", Price: 14, Available: false})
	require.NoError(t, err)

	items, err := s.ListAvailableMenuItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rice Bowl", items[0].Name)

	// Toggling the flag moves the item out of the available set.
	item, err := s.GetMenuItem(availID)
	require.NoError(t, err)
	item.Available = false
	require.NoError(t, s.UpdateMenuItem(item))

	items, err = s.ListAvailableMenuItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateMenuItem(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 10, Available: true})
	require.NoError(t, err)
	otherID, err := s.AddMenuItem(types.MenuItem{Name: "Feijoada", Price: 14, Available: true})
	require.NoError(t, err)

	require.NoError(t, s.UpdateMenuItem(types.MenuItem{
		MenuItemID:  id,
		Name:        "Rice Bowl XL",
		Description: "Bigger portion",
		Price:       12.50,
		Category:    "Classic",
		Available:   true,
		ImagePath:   "images/abc.jpg",
	}))
	m, err := s.GetMenuItem(id)
	require.NoError(t, err)
	assert.Equal(t, "Rice Bowl XL", m.Name)
	assert.Equal(t, 12.50, m.Price)
	assert.Equal(t, "images/abc.jpg", m.ImagePath)

	err = s.UpdateMenuItem(types.MenuItem{MenuItemID: otherID, Name: "Rice Bowl XL", Price: 14})
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	err = s.UpdateMenuItem(types.MenuItem{MenuItemID: 9999, Name: "Ghost"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 10})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMenuItem(id))
	_, err = s.GetMenuItem(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, s.DeleteMenuItem(id), types.ErrNotFound)
}
