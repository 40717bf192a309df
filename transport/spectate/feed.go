package spectate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/transport/websocket"
)

// DefaultEvery is the default number of frames between state_update messages.
const DefaultEvery = 6

// Publisher fans a snapshot out to spectators.
type Publisher interface {
	Publish(matchID, event string, state engine.GameState)
}

// Feed holds the latest snapshot of one match and forwards a subset of
// frames to a Publisher. It is safe for concurrent use: the frame loop calls
// Observe while HTTP handlers call Latest.
type Feed struct {
	mu        sync.RWMutex
	matchID   string
	every     int
	publisher Publisher

	latest   engine.GameState
	hasState bool
}

// NewMatchID returns a short random match identifier.
func NewMatchID() string {
	return uuid.New().String()[:8]
}

// NewFeed creates a feed for a new match. every < 1 uses DefaultEvery; a nil
// publisher only keeps the latest snapshot.
func NewFeed(publisher Publisher, every int) *Feed {
	if every < 1 {
		every = DefaultEvery
	}
	return &Feed{
		matchID:   NewMatchID(),
		every:     every,
		publisher: publisher,
	}
}

// MatchID returns the identifier spectators subscribe to.
func (f *Feed) MatchID() string {
	return f.matchID
}

// Observe records a post-frame state. It publishes a score event when either
// score changed since the previous frame and a state_update every N frames.
// Its signature matches loop.Observer.
func (f *Feed) Observe(state engine.GameState) {
	f.mu.Lock()
	scored := f.hasState && (state.Score1 != f.latest.Score1 || state.Score2 != f.latest.Score2)
	f.latest = state
	f.hasState = true
	f.mu.Unlock()

	if f.publisher == nil {
		return
	}

	if scored {
		f.publisher.Publish(f.matchID, websocket.EventScore, state)
	}
	if state.Frame%f.every == 0 {
		f.publisher.Publish(f.matchID, websocket.EventStateUpdate, state)
	}
}

// Latest returns the most recent snapshot and whether any frame has been
// observed yet.
func (f *Feed) Latest() (engine.GameState, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest, f.hasState
}
