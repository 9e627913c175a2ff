package shell

import (
	"time"
)

// seqRandom replays a fixed sequence of values, each taken modulo n.
type seqRandom struct {
	values []int
	pos    int
}

func (s *seqRandom) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// instantClock fires immediately and records requested delays.
type instantClock struct {
	delays []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.delays = append(c.delays, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func newTestInterpreter(opts ...Option) (*Interpreter, *instantClock) {
	clock := &instantClock{}
	opts = append([]Option{WithClock(clock.After)}, opts...)
	return New(opts...), clock
}

func sessionIn(f Folder) Session {
	return Session{Folder: f}
}
