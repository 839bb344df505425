package services

import (
	"errors"
	"sync"
	"time"

	"pizzaparty/internal/core/domain/model/order"
)

// ErrSequenceExhausted is returned when a calendar day has already issued
// order.MaxDailySequence codes. The generator never wraps or truncates;
// callers surface this as a service-unavailable condition until midnight.
var ErrSequenceExhausted = errors.New("daily order code sequence exhausted")

// CodeGenerator is the domain service that mints order codes. It owns the
// daily counter and guarantees that concurrent callers never receive the
// same code and that the sequence restarts at 0001 exactly once per
// calendar-day boundary.
//
// Every call to Next runs inside a single critical section: the
// read-increment-store of the counter is atomic with respect to all other
// calls. The counter is replaced, not mutated in place, when the day rolls
// over. A counter lost on process restart re-initializes at 0001 for the
// current date; the create flow's store-side existence check covers that
// window.
type CodeGenerator struct {
	mu      sync.Mutex
	counter *dailyCounter
	now     func() time.Time
}

// dailyCounter scopes the next sequence value to one calendar day.
type dailyCounter struct {
	day  string
	next int
}

// NewCodeGenerator creates a generator using the system clock.
func NewCodeGenerator() *CodeGenerator {
	return NewCodeGeneratorWithClock(time.Now)
}

// NewCodeGeneratorWithClock creates a generator with an injected clock.
// Tests use this to drive day rollover deterministically.
func NewCodeGeneratorWithClock(now func() time.Time) *CodeGenerator {
	return &CodeGenerator{now: now}
}

// Next mints the next order code for the current date.
//
// Consecutive serialized calls within one day increase the numeric suffix
// by exactly one; the first call after a day change starts a fresh counter
// at 0001. Returns ErrSequenceExhausted once the day's sequence is spent.
func (g *CodeGenerator) Next() (order.Code, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	day := now.Format(order.CodeDateLayout)

	if g.counter == nil || g.counter.day != day {
		g.counter = &dailyCounter{day: day, next: 1}
	}

	if g.counter.next > order.MaxDailySequence {
		return order.Code{}, ErrSequenceExhausted
	}

	sequence := g.counter.next
	g.counter.next++

	return order.NewCode(now, sequence)
}
