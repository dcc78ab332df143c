package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

type recordingSubscriber struct {
	id       string
	types    map[string]bool
	received []Event
}

func (r *recordingSubscriber) ID() string { return r.id }

func (r *recordingSubscriber) InterestedIn(eventType string) bool {
	if r.types == nil {
		return true
	}
	return r.types[eventType]
}

func (r *recordingSubscriber) HandleEvent(event Event) {
	r.received = append(r.received, event)
}

func TestEventBus_PublishToSubscribers(t *testing.T) {
	bus := NewEventBus()
	all := &recordingSubscriber{id: "all"}
	movesOnly := &recordingSubscriber{id: "moves", types: map[string]bool{TypeMoveApplied: true}}

	bus.Subscribe(all)
	bus.Subscribe(movesOnly)
	assert.Equal(t, 2, bus.SubscriberCount())

	bus.Publish(NewGameStartedEvent("g1", core.Black, core.Counts{Black: 2, White: 2, Empty: 60}))
	bus.Publish(NewMoveAppliedEvent("g1", core.Black, core.Coord{Row: 2, Col: 3}, 1, core.Counts{}))

	assert.Len(t, all.received, 2)
	assert.Len(t, movesOnly.received, 1)
	assert.Equal(t, TypeMoveApplied, movesOnly.received[0].Type())
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "sub"}
	bus.Subscribe(sub)
	bus.Unsubscribe("sub")

	bus.Publish(NewTurnForfeitedEvent("g1", core.White))

	assert.Empty(t, sub.received)
	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestEventBus_FuncHandlers(t *testing.T) {
	bus := NewEventBus()
	var got []Event
	bus.SubscribeFunc(TypeGameEnded, func(e Event) {
		got = append(got, e)
	})

	bus.Publish(NewGameEndedEvent("g1", core.Empty, core.Counts{Black: 32, White: 32}, 60, 0))
	bus.Publish(NewMoveRejectedEvent("g1", core.Black, core.Coord{Row: 0, Col: 0}))

	assert.Len(t, got, 1)
	assert.Equal(t, TypeGameEnded, got[0].Type())
}

func TestEventBus_PanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewEventBus()
	bus.SubscribeFunc(TypeMoveApplied, func(Event) {
		panic("boom")
	})
	healthy := &recordingSubscriber{id: "healthy"}
	bus.Subscribe(healthy)

	assert.NotPanics(t, func() {
		bus.Publish(NewMoveAppliedEvent("g1", core.White, core.Coord{Row: 4, Col: 2}, 3, core.Counts{}))
	})
	assert.Len(t, healthy.received, 1)
}
