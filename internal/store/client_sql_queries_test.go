package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akhmetov/go-remind-sync/models"
)

func Test_buildListRemindersQuery_All(t *testing.T) {
	query, args, err := buildListRemindersQuery("owner-1", models.ListQuery{Filter: models.FilterAll})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from reminders")
	require.Contains(t, q, "owner_id")
	require.Contains(t, q, "is_deleted")
	require.Contains(t, q, "order by created_at desc")

	require.Len(t, args, 2)
	require.Equal(t, "owner-1", args[0])
}

func Test_buildListRemindersQuery_Active(t *testing.T) {
	query, _, err := buildListRemindersQuery("owner-1", models.ListQuery{Filter: models.FilterActive})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "is_completed")
	require.Contains(t, q, "is_active")
	// time reminders come before location reminders
	require.Contains(t, q, "type = 'location'")
	require.Contains(t, q, "coalesce(trigger_at, created_at)")
}

func Test_buildListRemindersQuery_DateRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	query, args, err := buildListRemindersQuery("owner-1", models.ListQuery{
		Filter: models.FilterDateRange,
		From:   from,
		To:     to,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "trigger_at >=")
	require.Contains(t, q, "trigger_at <")
	require.Contains(t, q, "order by trigger_at asc")

	require.Len(t, args, 4)
	require.Contains(t, args, from)
	require.Contains(t, args, to)
}

func Test_buildListRemindersQuery_Today(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, args, err := buildListRemindersQuery("owner-1", models.ListQuery{
		Filter: models.FilterToday,
		From:   from,
		To:     to,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// either the trigger or the completion falls inside today
	require.Contains(t, q, "trigger_at")
	require.Contains(t, q, "completed_at")
	require.Contains(t, q, " or ")
	require.Contains(t, q, "order by is_completed asc")

	require.Len(t, args, 6)
}

func Test_buildUpdateReminderQuery_OnlySetFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	title := "buy milk"
	priority := models.PriorityHigh

	query, args, err := buildUpdateReminderQuery("owner-1", "rem-1", models.ReminderUpdate{
		Title:    &title,
		Priority: &priority,
	}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update reminders")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "title")
	require.Contains(t, q, "priority")
	require.NotContains(t, q, "notes")
	require.NotContains(t, q, "latitude")

	// 3 SET values + owner_id + id + is_deleted
	require.Len(t, args, 6)
	require.Contains(t, args, title)
	require.Contains(t, args, priority)
}

func Test_buildUpdateReminderQuery_NeverTouchesIdentityColumns(t *testing.T) {
	now := time.Now()
	notes := "updated"

	query, _, err := buildUpdateReminderQuery("owner-1", "rem-1", models.ReminderUpdate{Notes: &notes}, now)
	require.NoError(t, err)

	setClause := strings.ToLower(query)
	setClause = setClause[:strings.Index(setClause, "where")]

	require.NotContains(t, setClause, "owner_id")
	require.NotContains(t, setClause, "created_at")
}

func Test_buildUpdateCategoryQuery(t *testing.T) {
	now := time.Now()
	name := "errands"

	query, args, err := buildUpdateCategoryQuery("owner-1", "cat-1", models.CategoryUpdate{Name: &name}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update categories")
	require.Contains(t, q, "name")
	require.NotContains(t, q, "color")
	require.Len(t, args, 5)
}

func Test_buildUpdateSavedPlaceQuery(t *testing.T) {
	now := time.Now()
	lat, lon := 55.75, 37.62

	query, args, err := buildUpdateSavedPlaceQuery("owner-1", "place-1", models.SavedPlaceUpdate{
		Latitude:  &lat,
		Longitude: &lon,
	}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update saved_places")
	require.Contains(t, q, "latitude")
	require.Contains(t, q, "longitude")
	require.NotContains(t, q, "address")
	require.Len(t, args, 6)
}
