package utils

import "testing"

func TestRepeatingTimerFiresOncePerInterval(t *testing.T) {
	timer := NewRepeatingTimer(0.1)
	fired := 0
	for i := 0; i < 10; i++ {
		fired += timer.Tick(0.1)
		if !timer.JustFinished() {
			t.Fatalf("tick %d: timer should have finished", i)
		}
	}
	if fired != 10 {
		t.Fatalf("fired %d times, want 10", fired)
	}
}

func TestRepeatingTimerAccumulatesShortFrames(t *testing.T) {
	timer := NewRepeatingTimer(0.1)
	fired := 0
	for i := 0; i < 6; i++ {
		fired += timer.Tick(1.0 / 60)
	}
	// 6 кадров по 1/60 = 0.1 с, но из-за округления срабатывание может прийти на следующем
	fired += timer.Tick(1.0 / 60)
	if fired != 1 {
		t.Fatalf("fired %d times over ~0.117s, want 1", fired)
	}
}

func TestRepeatingTimerLongFrameFiresSeveralTimes(t *testing.T) {
	timer := NewRepeatingTimer(0.1)
	if n := timer.Tick(0.35); n != 3 {
		t.Fatalf("Tick(0.35) = %d, want 3", n)
	}
	if timer.TimesFinished() != 3 {
		t.Fatalf("TimesFinished = %d", timer.TimesFinished())
	}
	if e := timer.Elapsed(); e < 0.049 || e > 0.051 {
		t.Fatalf("leftover = %v, want 0.05", e)
	}
	if n := timer.Tick(0.01); n != 0 || timer.JustFinished() {
		t.Fatalf("short tick should not fire, got %d", n)
	}
}

func TestRepeatingTimerReset(t *testing.T) {
	timer := NewRepeatingTimer(0.1)
	timer.Tick(0.09)
	timer.Reset()
	if n := timer.Tick(0.09); n != 0 {
		t.Fatalf("reset timer fired after 0.09s")
	}
}

func TestRepeatingTimerIgnoresNonPositiveDelta(t *testing.T) {
	timer := NewRepeatingTimer(0.1)
	if n := timer.Tick(-1); n != 0 {
		t.Fatalf("negative delta fired %d", n)
	}
	if n := timer.Tick(0); n != 0 {
		t.Fatalf("zero delta fired %d", n)
	}
}
