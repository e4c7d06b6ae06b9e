package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahgahmed/llama-time/pkg/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "data", "dashboards.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testDashboard(id string, createdAt time.Time) *models.Dashboard {
	return &models.Dashboard{
		ID:          id,
		Title:       "AI Investigation: High error rate on checkout",
		Description: "Critical metrics at top",
		CreatedAt:   createdAt,
		MonitorID:   20829685,
		TimeRange: models.TimeRange{
			From:    createdAt.Add(-time.Hour),
			To:      createdAt,
			Display: "Last 1 hour",
		},
		Widgets: []models.Widget{
			{
				ID:     "w-1",
				Type:   models.WidgetTimeseries,
				Title:  "Error Rate",
				Layout: models.WidgetLayout{X: 3, Y: 0, Width: 9, Height: 3},
				Config: models.TimeseriesConfig{
					Type:       models.WidgetTimeseries,
					Query:      "sum:errors{service:checkout}.as_rate()",
					ShowLegend: true,
					LineType:   models.LineTypeLine,
				},
			},
			{
				ID:     "w-2",
				Type:   models.WidgetAlertStatus,
				Title:  "Monitor Status",
				Layout: models.WidgetLayout{X: 0, Y: 0, Width: 3, Height: 2},
				Config: models.AlertStatusConfig{
					Type:      models.WidgetAlertStatus,
					MonitorID: 20829685,
				},
			},
		},
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	original := testDashboard("dash-1", createdAt)

	require.NoError(t, s.Save(ctx, original))

	loaded, err := s.Get(ctx, "dash-1")
	require.NoError(t, err)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.Title, loaded.Title)
	assert.Equal(t, original.MonitorID, loaded.MonitorID)
	assert.True(t, original.CreatedAt.Equal(loaded.CreatedAt))
	require.Len(t, loaded.Widgets, 2)

	// Widget configs survive as their concrete types.
	tsCfg, ok := loaded.Widgets[0].Config.(models.TimeseriesConfig)
	require.True(t, ok)
	assert.Equal(t, "sum:errors{service:checkout}.as_rate()", tsCfg.Query)

	statusCfg, ok := loaded.Widgets[1].Config.(models.AlertStatusConfig)
	require.True(t, ok)
	assert.Equal(t, int64(20829685), statusCfg.MonitorID)
}

func TestSaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	dashboard := testDashboard("dash-1", time.Now().UTC())
	require.NoError(t, s.Save(ctx, dashboard))

	dashboard.Title = "Renamed"
	require.NoError(t, s.Save(ctx, dashboard))

	loaded, err := s.Get(ctx, "dash-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Title)

	summaries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestGetMissingDashboard(t *testing.T) {
	s := openTestStore(t)

	dashboard, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDashboardNotFound)
	assert.Nil(t, dashboard)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, testDashboard("old", base.Add(-2*time.Hour))))
	require.NoError(t, s.Save(ctx, testDashboard("new", base)))
	require.NoError(t, s.Save(ctx, testDashboard("mid", base.Add(-time.Hour))))

	summaries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "mid", summaries[1].ID)
	assert.Equal(t, "old", summaries[2].ID)

	assert.Equal(t, int64(20829685), summaries[0].MonitorID)
	assert.NotEmpty(t, summaries[0].Title)
}

func TestListEmptyStore(t *testing.T) {
	s := openTestStore(t)

	summaries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testDashboard("dash-1", time.Now().UTC())))
	require.NoError(t, s.Delete(ctx, "dash-1"))

	_, err := s.Get(ctx, "dash-1")
	assert.ErrorIs(t, err, ErrDashboardNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "dash-1"), ErrDashboardNotFound)
}
