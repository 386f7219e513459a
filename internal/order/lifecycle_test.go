package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(stage string, completed bool, at time.Time) TimelineEvent {
	desc := DefaultStatusMessage(Status(stage))
	return TimelineEvent{
		ID:          uuid.New(),
		Stage:       stage,
		Description: &desc,
		IsCompleted: completed,
		CreatedAt:   at,
	}
}

func stageNames(p Progress) []string {
	names := make([]string, 0, len(p.Stages))
	for _, s := range p.Stages {
		names = append(names, s.Name)
	}
	return names
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		raw   string
		stage string
		index int
		ok    bool
	}{
		{"Order Placed", "Order Placed", 0, true},
		{"Preparing", "Order Ready", 1, true},
		{"Order Ready", "Order Ready", 1, true},
		{"Picked Up", "Out for Delivery", 2, true},
		{"Out for Delivery", "Out for Delivery", 2, true},
		{"Delivered", "Delivered", 3, true},
		{"Cancelled", "", -1, false},
		{"Lost", "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			stage, index, ok := ResolveStatus(tt.raw)
			assert.Equal(t, tt.stage, stage)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("  out for delivery ")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, s)

	_, ok = ParseStatus("shipped")
	assert.False(t, ok)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPickedUp.Terminal())

	assert.Equal(t, StageCancelled, TimelineStageFor(StatusCancelled))
	assert.Equal(t, "Preparing", TimelineStageFor(StatusPreparing))

	assert.Equal(t, "Your order is on its way", DefaultStatusMessage(StatusOutForDelivery))
	assert.Equal(t, "Order status updated", DefaultStatusMessage("Unknown"))
}

func TestBuildProgress_OrderPlacedAlwaysFirst(t *testing.T) {
	now := time.Now()
	timeline := []TimelineEvent{event("Order Placed", true, now)}

	for _, st := range knownStatuses {
		for _, events := range [][]TimelineEvent{nil, timeline} {
			p := BuildProgress(string(st), events)
			require.NotEmpty(t, p.Stages, st)
			assert.Equal(t, "Order Placed", p.Stages[0].Name, st)
			assert.True(t, p.Stages[0].Completed, st)
		}
	}
}

func TestBuildProgress_Fallback(t *testing.T) {
	t.Run("PreparingTruncatesAtCurrent", func(t *testing.T) {
		p := BuildProgress("Preparing", nil)

		require.Len(t, p.Stages, 2)
		assert.Equal(t, "Order Placed", p.Stages[0].Name)
		assert.True(t, p.Stages[0].Completed)
		assert.False(t, p.Stages[0].Current)

		assert.Equal(t, "Order Ready", p.Stages[1].Name)
		assert.True(t, p.Stages[1].Current)
		assert.False(t, p.Stages[1].Completed)
		assert.Nil(t, p.Stages[1].Timestamp)
	})

	t.Run("Placed", func(t *testing.T) {
		p := BuildProgress("Order Placed", nil)
		require.Len(t, p.Stages, 1)
		assert.True(t, p.Stages[0].Completed)
		assert.True(t, p.Stages[0].Current)
	})

	t.Run("Delivered", func(t *testing.T) {
		p := BuildProgress("Delivered", nil)
		assert.Equal(t, Stages, stageNames(p))
		assert.True(t, p.Stages[2].Completed)
		assert.False(t, p.Stages[3].Completed)
		assert.True(t, p.Stages[3].Current)
	})

	t.Run("CancelledShowsOnlyPlaced", func(t *testing.T) {
		p := BuildProgress("Cancelled", nil)
		assert.Equal(t, []string{"Order Placed"}, stageNames(p))
		assert.False(t, p.Stages[0].Current)
		assert.True(t, p.Cancelled)
		assert.Nil(t, p.CancelledAt)
	})
}

func TestBuildProgress_Timeline(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("OutForDeliveryWithFullTimeline", func(t *testing.T) {
		events := []TimelineEvent{
			event("Order Placed", true, base),
			event("Order Ready", true, base.Add(20*time.Minute)),
			event("Out for Delivery", true, base.Add(30*time.Minute)),
			event("Delivered", false, base.Add(31*time.Minute)),
		}

		p := BuildProgress("Out for Delivery", events)
		assert.Equal(t, Stages, stageNames(p))

		assert.True(t, p.Stages[1].Completed)
		require.NotNil(t, p.Stages[1].Timestamp)
		assert.Equal(t, base.Add(20*time.Minute), *p.Stages[1].Timestamp)

		assert.True(t, p.Stages[2].Completed)
		assert.True(t, p.Stages[2].Current)

		delivered := p.Stages[3]
		assert.False(t, delivered.Completed)
		assert.False(t, delivered.Current)
		assert.False(t, p.Cancelled)
	})

	t.Run("DeliveredIsCurrentOnlyWhenStatusIsDelivered", func(t *testing.T) {
		events := []TimelineEvent{
			event("Order Placed", true, base),
			event("Delivered", true, base.Add(time.Hour)),
		}
		p := BuildProgress("Delivered", events)
		assert.True(t, p.Stages[3].Current)
		assert.True(t, p.Stages[3].Completed)
	})

	t.Run("EmitsFutureStages", func(t *testing.T) {
		p := BuildProgress("Order Placed", []TimelineEvent{event("Order Placed", true, base)})
		assert.Equal(t, Stages, stageNames(p))
		assert.True(t, p.Stages[0].Current)
		for _, s := range p.Stages[1:] {
			assert.False(t, s.Completed, s.Name)
			assert.False(t, s.Current, s.Name)
			assert.Nil(t, s.Timestamp, s.Name)
		}
	})

	t.Run("AliasEventDoesNotCompleteStage", func(t *testing.T) {
		events := []TimelineEvent{
			event("Order Placed", true, base),
			event("Preparing", true, base.Add(5*time.Minute)),
		}
		p := BuildProgress("Preparing", events)
		ready := p.Stages[1]
		assert.Equal(t, "Order Ready", ready.Name)
		assert.True(t, ready.Current)
		assert.False(t, ready.Completed)
	})

	t.Run("LatestCompletedEventWins", func(t *testing.T) {
		note := "Packed with ice"
		events := []TimelineEvent{
			event("Order Placed", true, base),
			event("Order Ready", false, base.Add(time.Minute)),
			{ID: uuid.New(), Stage: "Order Ready", Description: &note, IsCompleted: true, CreatedAt: base.Add(2 * time.Minute)},
		}
		p := BuildProgress("Order Ready", events)
		assert.True(t, p.Stages[1].Completed)
		assert.Equal(t, note, p.Stages[1].Description)
		assert.Equal(t, base.Add(2*time.Minute), *p.Stages[1].Timestamp)
	})

	t.Run("Cancelled", func(t *testing.T) {
		note := "Out of stock"
		events := []TimelineEvent{
			event("Order Placed", true, base),
			event("Order Ready", true, base.Add(10*time.Minute)),
			{ID: uuid.New(), Stage: StageCancelled, Description: &note, CreatedAt: base.Add(15 * time.Minute)},
		}
		p := BuildProgress("Cancelled", events)

		assert.Equal(t, []string{"Order Placed", "Order Ready"}, stageNames(p))
		for _, s := range p.Stages {
			assert.False(t, s.Current, s.Name)
		}
		assert.True(t, p.Cancelled)
		require.NotNil(t, p.CancelledAt)
		assert.Equal(t, base.Add(15*time.Minute), *p.CancelledAt)
		assert.Equal(t, note, p.CancelNote)
	})
}
