// internal/utils/timer.go
package utils

// RepeatingTimer срабатывает каждые Interval секунд игрового времени.
// Если кадр длиннее интервала, за один Tick может накопиться несколько срабатываний.
type RepeatingTimer struct {
	Interval float64
	elapsed  float64
	finished int
}

func NewRepeatingTimer(interval float64) *RepeatingTimer {
	return &RepeatingTimer{Interval: interval}
}

// Tick продвигает таймер на deltaTime и возвращает число срабатываний за этот тик
func (t *RepeatingTimer) Tick(deltaTime float64) int {
	t.finished = 0
	if t.Interval <= 0 || deltaTime <= 0 {
		return 0
	}
	t.elapsed += deltaTime
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		t.finished++
	}
	return t.finished
}

// JustFinished — сработал ли таймер на последнем тике
func (t *RepeatingTimer) JustFinished() bool {
	return t.finished > 0
}

// TimesFinished — сколько раз таймер сработал на последнем тике
func (t *RepeatingTimer) TimesFinished() int {
	return t.finished
}

// Elapsed — время, накопленное с последнего срабатывания
func (t *RepeatingTimer) Elapsed() float64 {
	return t.elapsed
}

func (t *RepeatingTimer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
