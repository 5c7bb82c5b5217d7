package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_PublishReturnsOwnedIdentifier(t *testing.T) {
	c := NewCenter()

	id1 := c.Success("Campaign created successfully!")
	id2 := c.Error("Error creating campaign")

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, LevelSuccess, active[0].Level)
	assert.Equal(t, LevelError, active[1].Level)
	assert.False(t, active[0].Time.IsZero())
}

func TestCenter_DismissRemovesOnlyTheTarget(t *testing.T) {
	c := NewCenter()
	id1 := c.Success("first")
	id2 := c.Success("second")

	c.Dismiss(id1)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id2, active[0].ID)
}

func TestCenter_DismissIsIdempotent(t *testing.T) {
	c := NewCenter()
	id := c.Success("once")

	c.Dismiss(id)
	c.Dismiss(id)
	c.Dismiss("never-existed")

	assert.Empty(t, c.Active())
}

func TestCenter_SubscribeReceivesAddAndDismiss(t *testing.T) {
	c := NewCenter()
	events, cancel := c.Subscribe()
	defer cancel()

	id := c.Error("posting failed")

	ev := <-events
	require.NotNil(t, ev.Added)
	assert.Equal(t, id, ev.Added.ID)
	assert.Equal(t, "posting failed", ev.Added.Message)

	c.Dismiss(id)
	ev = <-events
	assert.Nil(t, ev.Added)
	assert.Equal(t, id, ev.Dismissed)
}

func TestCenter_CancelStopsDelivery(t *testing.T) {
	c := NewCenter()
	events, cancel := c.Subscribe()
	cancel()

	// Publishing after cancel must not panic on a closed channel.
	c.Success("after cancel")

	_, open := <-events
	assert.False(t, open)
}

func TestCenter_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	c := NewCenter()
	_, cancel := c.Subscribe()
	defer cancel()

	// Fill well past the subscriber buffer; Publish must never stall.
	for i := 0; i < 100; i++ {
		c.Success("burst")
	}
	assert.Len(t, c.Active(), 100)
}
