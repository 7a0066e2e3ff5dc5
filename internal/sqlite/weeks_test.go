package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasteops/mealweek/pkg/types"
)

func date(t *testing.T, v string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	require.NoError(t, err)
	return &d
}

func TestAddWeek(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddWeek("Week of May 5-11", date(t, "2025-05-05"), date(t, "2025-05-11"))
	require.NoError(t, err)
	assert.Positive(t, id)

	// Duplicate name is rejected and the row count is unchanged.
	_, err = s.AddWeek("Week of May 5-11", nil, nil)
	assert.ErrorIs(t, err, types.ErrDuplicateName)
	weeks, err := s.ListWeeks()
	require.NoError(t, err)
	assert.Len(t, weeks, 1)
}

func TestListWeeks_Ordering(t *testing.T) {
	s := setupStore(t)

	// Most recent start date first, name as tie-breaker, dateless weeks last.
	_, err := s.AddWeek("B old", date(t, "2025-04-01"), nil)
	require.NoError(t, err)
	_, err = s.AddWeek("A new", date(t, "2025-05-01"), nil)
	require.NoError(t, err)
	_, err = s.AddWeek("Z same day", date(t, "2025-05-01"), nil)
	require.NoError(t, err)
	_, err = s.AddWeek("No dates", nil, nil)
	require.NoError(t, err)

	weeks, err := s.ListWeeks()
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, "A new", weeks[0].Name)
	assert.Equal(t, "Z same day", weeks[1].Name)
	assert.Equal(t, "B old", weeks[2].Name)
	assert.Equal(t, "No dates", weeks[3].Name)

	// Dates round-trip.
	require.NotNil(t, weeks[0].StartDate)
	assert.Equal(t, "2025-05-01", weeks[0].StartDate.Format("2006-01-02"))
	assert.Nil(t, weeks[3].StartDate)
	assert.Nil(t, weeks[3].EndDate)
}

func TestUpdateWeek(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddWeek("Week 1", nil, nil)
	require.NoError(t, err)
	otherID, err := s.AddWeek("Week 2", nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.UpdateWeek(id, "Week 1 revised", date(t, "2025-05-05"), date(t, "2025-05-11")))
	weeks, err := s.ListWeeks()
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	// Renaming onto another week's name is a conflict.
	err = s.UpdateWeek(otherID, "Week 1 revised", nil, nil)
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	assert.ErrorIs(t, s.UpdateWeek(9999, "ghost", nil, nil), types.ErrNotFound)
	assert.ErrorIs(t, s.UpdateWeek(0, "ghost", nil, nil), types.ErrInvalidID)
}

func TestDeleteWeek(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddWeek("Week 1", nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteWeek(id))
	weeks, err := s.ListWeeks()
	require.NoError(t, err)
	assert.Empty(t, weeks)

	assert.ErrorIs(t, s.DeleteWeek(id), types.ErrNotFound)
}
