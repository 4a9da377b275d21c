package voting

import (
	"context"
	"errors"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/sirupsen/logrus"
	"sync"
	"testing"
)

// rubricWith scores every criterion of each group with the score given for
// that group.
func rubricWith(groups []RubricGroup, scores map[string]int) Rubric {
	r := make(Rubric, len(groups))
	for _, g := range groups {
		m := make(map[string]int, len(g.Criteria))
		for _, c := range g.Criteria {
			m[c] = scores[g.Key]
		}
		r[g.Key] = m
	}
	return r
}

func defaultRubric(p, i int) Rubric {
	return rubricWith(DefaultConfig().Rubrics, map[string]int{
		"presentationSkills":    p,
		"implementationQuality": i,
	})
}

func newTestStore(t *testing.T, docs storage.DocumentStorage) (*VoteStore, *TeamRegistry) {
	t.Helper()
	logging.Log = logrus.New()
	conf := DefaultConfig()
	teams := LoadTeamRegistry(context.Background(), conf.Teams, docs)
	return NewVoteStore(context.Background(), teams, conf.Rubrics, docs), teams
}

type flakyStorage struct {
	mu        sync.Mutex
	inner     storage.DocumentStorage
	failSaves bool
	failLoads bool
	saves     int
}

var errDiskFull = errors.New("disk full")

func (s *flakyStorage) Load(ctx context.Context, key string, into interface{}) error {
	s.mu.Lock()
	fail := s.failLoads
	s.mu.Unlock()
	if fail {
		return errDiskFull
	}
	return s.inner.Load(ctx, key, into)
}

func (s *flakyStorage) Save(ctx context.Context, key string, doc interface{}) error {
	s.mu.Lock()
	s.saves++
	fail := s.failSaves
	s.mu.Unlock()
	if fail {
		return errDiskFull
	}
	return s.inner.Save(ctx, key, doc)
}

func (s *flakyStorage) setFailSaves(v bool) {
	s.mu.Lock()
	s.failSaves = v
	s.mu.Unlock()
}

type recordingPublisher struct {
	mu         sync.Mutex
	events     []string
	lastTally  VoteTally
	lastResult ResultsSnapshot
}

func (p *recordingPublisher) PublishVoteUpdate(tally VoteTally) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, "voting_update")
	p.lastTally = tally
}

func (p *recordingPublisher) PublishResultsUpdate(results ResultsSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, "results_update")
	p.lastResult = results
}

func (p *recordingPublisher) NotifyAwardCeremonyStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, "award_ceremony")
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
