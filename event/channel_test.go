package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/core"
)

// TestChannelReadOrder verifies events come back in publish order and only once
func TestChannelReadOrder(t *testing.T) {
	ch := NewChannel[int]()
	r := ch.Subscribe()

	ch.Publish(1)
	ch.Publish(2)
	ch.Publish(3)

	assert.Equal(t, []int{1, 2, 3}, ch.Read(r))
	assert.Nil(t, ch.Read(r), "second read should be empty")

	ch.Publish(4)
	assert.Equal(t, []int{4}, ch.Read(r))
}

// TestChannelNoReplay verifies a new reader starts at "now"
func TestChannelNoReplay(t *testing.T) {
	ch := NewChannel[string]()
	early := ch.Subscribe()

	ch.Publish("before")
	late := ch.Subscribe()
	ch.Publish("after")

	assert.Equal(t, []string{"before", "after"}, ch.Read(early))
	assert.Equal(t, []string{"after"}, ch.Read(late))
}

// TestChannelIndependentReaders verifies cursors do not interfere
func TestChannelIndependentReaders(t *testing.T) {
	ch := NewChannel[int]()
	a := ch.Subscribe()
	b := ch.Subscribe()

	ch.Publish(10)
	require.Equal(t, []int{10}, ch.Read(a))

	ch.Publish(20)
	assert.Equal(t, []int{20}, ch.Read(a))
	assert.Equal(t, []int{10, 20}, ch.Read(b))
	assert.Equal(t, 0, ch.Pending(a))
	assert.Equal(t, 0, ch.Pending(b))
}

// TestChannelCompaction verifies the log is dropped once all readers passed it
func TestChannelCompaction(t *testing.T) {
	ch := NewChannel[int]()
	a := ch.Subscribe()
	b := ch.Subscribe()

	for i := 0; i < 5; i++ {
		ch.Publish(i)
	}
	ch.Read(a)
	assert.Equal(t, 5, ch.Len(), "slow reader holds the log")

	ch.Read(b)
	assert.Equal(t, 0, ch.Len(), "log reset once every reader passed it")

	// Partial compaction keeps the unread tail addressable
	ch.Publish(5)
	ch.Read(a)
	ch.Publish(6)
	assert.Equal(t, []int{5, 6}, ch.Read(b))
	assert.Equal(t, []int{6}, ch.Read(a))
	assert.Equal(t, 0, ch.Len())
}

// TestChannelUnsubscribe verifies a removed reader no longer pins the log
func TestChannelUnsubscribe(t *testing.T) {
	ch := NewChannel[int]()
	a := ch.Subscribe()
	b := ch.Subscribe()

	ch.Publish(1)
	ch.Read(a)
	require.Equal(t, 1, ch.Len())

	ch.Unsubscribe(b)
	assert.Equal(t, 0, ch.Len())
}

// TestChannelWithoutReaders verifies events nobody can read are not retained
func TestChannelWithoutReaders(t *testing.T) {
	ch := NewChannel[int]()
	ch.Publish(1)
	ch.Publish(2)
	assert.Equal(t, 0, ch.Len())

	r := ch.Subscribe()
	ch.Publish(3)
	assert.Equal(t, []int{3}, ch.Read(r))
}

// TestBusGameEvents verifies the union constructors fill the expected fields
func TestBusGameEvents(t *testing.T) {
	bus := NewBus()
	r := bus.Game.Subscribe()
	id := core.NewBallID()

	bus.Game.Publish(Bounce(id))
	bus.Game.Publish(Score(id, core.SideRight))

	events := bus.Game.Read(r)
	require.Len(t, events, 2)
	assert.Equal(t, GameBounce, events[0].Type)
	assert.Equal(t, id, events[0].Ball)
	assert.Equal(t, GameScore, events[1].Type)
	assert.Equal(t, core.SideRight, events[1].Side)
	assert.Equal(t, "Score", events[1].Type.String())
}
