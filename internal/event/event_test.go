package event

import "testing"

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}
	d.Subscribe(CreepKilled, kills)
	d.SubscribeAll(all, CreepKilled, CreepLeaked)

	d.Dispatch(Event{Type: CreepKilled, Data: CreepData{ID: 1, Worth: 3}})
	d.Dispatch(Event{Type: CreepLeaked})
	d.Dispatch(Event{Type: TowerBuilt})

	if len(kills.got) != 1 {
		t.Fatalf("expected 1 kill event, got %d", len(kills.got))
	}
	if data, ok := kills.got[0].Data.(CreepData); !ok || data.Worth != 3 {
		t.Fatalf("unexpected payload %#v", kills.got[0].Data)
	}
	if len(all.got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(all.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameEnded, r)
	d.Unsubscribe(GameEnded, r)
	d.Dispatch(Event{Type: GameEnded})
	if len(r.got) != 0 {
		t.Fatalf("expected no events after unsubscribe")
	}
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameEnded}) // must not panic

	d = NewDispatcher()
	calls := 0
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: WaveStarted})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
