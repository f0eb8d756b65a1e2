package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(EnemyLeaked, ListenerFunc(func(e Event) { got = append(got, "leak") }))

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{Reward: 5}})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("unexpected delivery %v", got)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.SubscribeAll(ListenerFunc(func(Event) { count++ }), WaveStarted, SessionOver)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: SessionOver})
	d.Dispatch(Event{Type: TowerPlaced})

	if count != 2 {
		t.Errorf("expected 2 deliveries, got %d", count)
	}
}
