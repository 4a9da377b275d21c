package live

import (
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/google/uuid"
	"sync"
	"time"
)

const (
	EventVotingUpdate         = "voting_update"
	EventResultsUpdate        = "results_update"
	EventAwardCeremony        = "award_ceremony"
	EventAwardCeremonyStarted = "award_ceremony_started"
	defaultSendBuffer         = 16
)

// Conn is one viewer connection. WriteJSON is only ever called from the
// subscription's own writer goroutine.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data,omitempty"`
}

type VotingUpdate struct {
	Votes voting.VoteTally `json:"votes"`
}

type ResultsUpdate struct {
	Results voting.ResultsSnapshot `json:"results"`
}

type AwardCeremony struct {
	Timestamp time.Time `json:"timestamp"`
}

// StateFunc returns what a new viewer must see first.
type StateFunc func() voting.Snapshot

type Subscription struct {
	ID   uuid.UUID
	conn Conn
	send chan Event
	done chan struct{}
}

// Done is closed once the subscription has stopped writing and closed its
// connection.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Broadcaster fans events out to subscribed viewers. Each subscription has a
// bounded queue drained by its own goroutine; a viewer whose queue is full or
// whose write fails is dropped without affecting the others.
type Broadcaster struct {
	mu         sync.Mutex
	subs       map[uuid.UUID]*Subscription
	state      StateFunc
	sendBuffer int
	now        func() time.Time
}

func NewBroadcaster(state StateFunc, sendBuffer int) *Broadcaster {
	if sendBuffer < 2 {
		sendBuffer = defaultSendBuffer
	}
	return &Broadcaster{
		subs:       make(map[uuid.UUID]*Subscription),
		state:      state,
		sendBuffer: sendBuffer,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Subscribe registers conn and queues the current votes and results before
// any later update can reach it.
func (b *Broadcaster) Subscribe(conn Conn) *Subscription {
	sub := &Subscription{
		ID:   uuid.New(),
		conn: conn,
		send: make(chan Event, b.sendBuffer),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	snapshot := b.state()
	sub.send <- Event{Name: EventVotingUpdate, Data: VotingUpdate{Votes: snapshot.Votes}}
	sub.send <- Event{Name: EventResultsUpdate, Data: ResultsUpdate{Results: snapshot.Results}}
	b.subs[sub.ID] = sub
	count := len(b.subs)
	b.mu.Unlock()

	go b.writeLoop(sub)
	logging.Log.Infof("LIVE: viewer %s connected (%d connected)", sub.ID, count)
	return sub
}

// Unsubscribe is safe to call more than once.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	removed := b.removeLocked(sub.ID)
	count := len(b.subs)
	b.mu.Unlock()

	if removed {
		logging.Log.Infof("LIVE: viewer %s disconnected (%d connected)", sub.ID, count)
	}
}

func (b *Broadcaster) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) PublishVoteUpdate(tally voting.VoteTally) {
	b.broadcast(Event{Name: EventVotingUpdate, Data: VotingUpdate{Votes: tally}})
}

func (b *Broadcaster) PublishResultsUpdate(results voting.ResultsSnapshot) {
	b.broadcast(Event{Name: EventResultsUpdate, Data: ResultsUpdate{Results: results}})
}

func (b *Broadcaster) NotifyAwardCeremonyStarted() {
	b.broadcast(Event{Name: EventAwardCeremony, Data: AwardCeremony{Timestamp: b.now()}})
}

func (b *Broadcaster) broadcast(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, sub := range b.subs {
		select {
		case sub.send <- ev:
		default:
			logging.Log.Warnf("LIVE: viewer %s is not keeping up, dropping it", id)
			b.removeLocked(id)
		}
	}
}

// removeLocked closes the send queue; the writer goroutine then closes the
// connection. Caller holds b.mu.
func (b *Broadcaster) removeLocked(id uuid.UUID) bool {
	sub, ok := b.subs[id]
	if !ok {
		return false
	}
	delete(b.subs, id)
	close(sub.send)
	return true
}

func (b *Broadcaster) writeLoop(sub *Subscription) {
	defer close(sub.done)
	defer sub.conn.Close()

	for ev := range sub.send {
		if err := sub.conn.WriteJSON(ev); err != nil {
			logging.Log.Warnf("LIVE: write to viewer %s failed: %v", sub.ID, err)
			b.Unsubscribe(sub)
			return
		}
	}
}
