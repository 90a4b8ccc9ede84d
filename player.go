package gocube

import (
	"log/slog"
	"time"
)

// Player plays a queue of moves on a cube one animated turn at a time.
//
// The cube only settles a turn when it is rendered, so Step is meant to be
// called once per frame, before the cube is drawn.
type Player struct {
	cube   *Cube
	queue  []Move
	played []Move
	now    func() time.Time
	onMove func(Move)
	logger *slog.Logger
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithPlayerClock stamps dispatched moves using now.
func WithPlayerClock(now func() time.Time) PlayerOption {
	return func(p *Player) {
		p.now = now
	}
}

// OnMove registers a callback run each time a move is dispatched.
func OnMove(fn func(Move)) PlayerOption {
	return func(p *Player) {
		p.onMove = fn
	}
}

// WithPlayerLogger sets the logger for dispatch debug output.
func WithPlayerLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPlayer creates a player driving c.
func NewPlayer(c *Cube, opts ...PlayerOption) *Player {
	p := &Player{
		cube:   c,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enqueue appends moves to the end of the queue.
func (p *Player) Enqueue(moves ...Move) {
	p.queue = append(p.queue, moves...)
}

// Pending returns the number of moves not yet dispatched.
func (p *Player) Pending() int {
	return len(p.queue)
}

// Played returns the moves dispatched so far, oldest first.
func (p *Player) Played() []Move {
	out := make([]Move, len(p.played))
	copy(out, p.played)
	return out
}

// Clear drops every queued move. A turn in flight is left to finish.
func (p *Player) Clear() {
	p.queue = nil
}

// Busy reports whether a turn is animating or moves are still queued.
func (p *Player) Busy() bool {
	return p.cube.Rotating() || len(p.queue) > 0
}

// Step dispatches the next queued move if the cube is idle. It reports
// the move and whether one was dispatched.
func (p *Player) Step() (Move, bool, error) {
	if p.cube.Rotating() || len(p.queue) == 0 {
		return Move{}, false, nil
	}

	m := p.queue[0].WithTime(p.now())
	if err := Apply(p.cube, m); err != nil {
		return Move{}, false, err
	}
	p.queue = p.queue[1:]
	p.played = append(p.played, m)
	p.logger.Debug("move dispatched", "move", m.Notation(), "pending", len(p.queue))

	if p.onMove != nil {
		p.onMove(m)
	}
	return m, true, nil
}
