package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, BallLaunched, PinFell)

	d.Publish(BallLaunched, LaunchData{Radius: 0.3})
	d.Publish(BallFell, FallData{})
	d.Publish(PinFell, FallData{})

	if len(r.got) != 2 || r.got[0] != BallLaunched || r.got[1] != PinFell {
		t.Fatalf("got %v, want [BallLaunched PinFell]", r.got)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, LevelCleared)
	d.Subscribe(b, LevelCleared)
	d.Unsubscribe(LevelCleared, a)

	d.Publish(LevelCleared, ClearData{})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("a=%v b=%v", a.got, b.got)
	}
}

func TestListenerFuncReceivesData(t *testing.T) {
	d := NewDispatcher()
	var radius float64
	d.Subscribe(ListenerFunc(func(e Event) {
		radius = e.Data.(LaunchData).Radius
	}), BallLaunched)

	d.Publish(BallLaunched, LaunchData{Radius: 0.42})
	if radius != 0.42 {
		t.Fatalf("radius = %v", radius)
	}
}

func TestQueueBoundedAndDrainedOnce(t *testing.T) {
	q := NewQueue[int](2)
	if !q.Send(1) || !q.Send(2) {
		t.Fatal("sends within capacity must succeed")
	}
	if q.Send(3) {
		t.Fatal("send over capacity must be rejected")
	}
	if q.Dropped() != 1 {
		t.Fatalf("dropped = %d", q.Dropped())
	}

	got := q.Drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("drain = %v", got)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Fatal("queue must be empty after drain")
	}
	if !q.Send(4) {
		t.Fatal("queue must accept messages after drain")
	}
	if got[0] != 1 {
		t.Fatal("drained slice must not alias the queue buffer")
	}
}
