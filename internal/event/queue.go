// internal/event/queue.go
package event

// Queue — ограниченная очередь сообщений на один кадр.
// Send из фронтенда, Drain один раз за кадр из состояния.
type Queue[T any] struct {
	items   []T
	dropped int
}

func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Send кладёт сообщение. При переполнении сообщение отбрасывается и возвращается false.
func (q *Queue[T]) Send(msg T) bool {
	if len(q.items) == cap(q.items) {
		q.dropped++
		return false
	}
	q.items = append(q.items, msg)
	return true
}

// Drain возвращает накопленные сообщения и очищает очередь.
func (q *Queue[T]) Drain() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	clear(q.items)
	q.items = q.items[:0]
	return out
}

func (q *Queue[T]) Len() int { return len(q.items) }

// Dropped — сколько сообщений потеряно из-за переполнения
func (q *Queue[T]) Dropped() int { return q.dropped }
