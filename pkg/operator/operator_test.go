package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
)

func TestInvestigateMonitorLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitors := NewMockMonitorClient(ctrl)
	monitors.EXPECT().
		GetMonitor(gomock.Any(), int64(42)).
		Return(nil, errors.New("404 from vendor"))

	op := New(monitors, NewMockDesignClient(ctrl), zerolog.Nop())

	result, err := op.Investigate(context.Background(), 42)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestInvestigateWithLLMDesign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := testMonitor()

	monitors := NewMockMonitorClient(ctrl)
	monitors.EXPECT().
		GetMonitor(gomock.Any(), monitor.ID).
		Return(monitor, nil)

	llmMock := NewMockDesignClient(ctrl)
	llmMock.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&llm.Completion{
			Text: `{
				"investigation": "Checkout errors spiked after the 11:40 deploy.",
				"widgets": [
					{"type": "timeseries", "title": "Error Rate", "query": "sum:errors{service:checkout}.as_rate()", "width": 9, "height": 3},
					{"type": "logs", "title": "Checkout Errors", "query": "service:checkout status:error", "width": 6, "height": 4}
				],
				"time_range": "3h"
			}`,
		}, nil)

	op := New(monitors, llmMock, zerolog.Nop())

	result, err := op.Investigate(context.Background(), monitor.ID)
	require.NoError(t, err)

	assert.Equal(t, "Checkout errors spiked after the 11:40 deploy.", result.Investigation)
	require.NotNil(t, result.Dashboard)
	assert.Equal(t, "Last 3 hours", result.Dashboard.TimeRange.Display)
	// Status widget, two designed widgets, investigation guide.
	assert.Len(t, result.Dashboard.Widgets, 4)
}

func TestInvestigateDegradesToFallbackDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := testMonitor()

	monitors := NewMockMonitorClient(ctrl)
	monitors.EXPECT().
		GetMonitor(gomock.Any(), monitor.ID).
		Return(monitor, nil)

	llmMock := NewMockDesignClient(ctrl)
	llmMock.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	op := New(monitors, llmMock, zerolog.Nop())

	result, err := op.Investigate(context.Background(), monitor.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Dashboard)
	// Status, five fallback service widgets, investigation guide.
	assert.Len(t, result.Dashboard.Widgets, 7)
	assert.NotEmpty(t, result.Investigation)

	types := make(map[models.WidgetType]int)
	for _, w := range result.Dashboard.Widgets {
		types[w.Type]++
	}

	assert.Equal(t, 1, types[models.WidgetAlertStatus])
	assert.Equal(t, 2, types[models.WidgetTimeseries])
	assert.Equal(t, 2, types[models.WidgetMetric])
	assert.Equal(t, 1, types[models.WidgetLogs])
	assert.Equal(t, 1, types[models.WidgetMarkdown])
}

func TestInvestigateDefaultsEmptyInvestigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := testMonitor()

	monitors := NewMockMonitorClient(ctrl)
	monitors.EXPECT().
		GetMonitor(gomock.Any(), monitor.ID).
		Return(monitor, nil)

	llmMock := NewMockDesignClient(ctrl)
	llmMock.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&llm.Completion{Text: `{"investigation":"","widgets":[]}`}, nil)

	op := New(monitors, llmMock, zerolog.Nop())

	result, err := op.Investigate(context.Background(), monitor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Investigation in progress...", result.Investigation)
}
