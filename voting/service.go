package voting

import (
	"context"
	"github.com/alex-pricope/hackathon-voting/logging"
	"sync"
)

// Publisher fans state changes out to live viewers.
type Publisher interface {
	PublishVoteUpdate(tally VoteTally)
	PublishResultsUpdate(results ResultsSnapshot)
	NotifyAwardCeremonyStarted()
}

type SubmissionService struct {
	store     *VoteStore
	publisher Publisher
}

func NewSubmissionService(store *VoteStore, publisher Publisher) *SubmissionService {
	return &SubmissionService{store: store, publisher: publisher}
}

// Submit records one team's rubric and publishes the new vote counts. Results
// are not recomputed here.
func (s *SubmissionService) Submit(ctx context.Context, teamID string, rubric Rubric, comment, submitterID string) (*VoteReceipt, error) {
	receipt, err := s.store.RecordVote(ctx, teamID, rubric, comment, submitterID)
	if err != nil {
		logging.Log.Warnf("VOTE: rejected vote for %s: %v", teamID, err)
		return nil, err
	}
	logging.Log.Infof("VOTE: recorded vote %s for %s (count %d)", receipt.VoteID, teamID, receipt.VoteCount)
	s.store.PublishTally(s.publisher)
	return receipt, nil
}

type Snapshot struct {
	Votes         VoteTally       `json:"votes"`
	Results       ResultsSnapshot `json:"results"`
	OverallWinner *OverallWinner  `json:"overallWinner,omitempty"`
}

type QueryService struct {
	store   *VoteStore
	results *ResultsStore
	weights map[string]float64
}

func NewQueryService(store *VoteStore, results *ResultsStore, weights map[string]float64) *QueryService {
	return &QueryService{store: store, results: results, weights: weights}
}

func (s *QueryService) GetSnapshot() Snapshot {
	results := s.results.Current()
	return Snapshot{
		Votes:         s.store.Tally(),
		Results:       results,
		OverallWinner: ComputeOverallWinner(results, s.weights),
	}
}

// AdminService holds the operations behind the admin gate. mu keeps
// recompute, reset and ceremony broadcasts from interleaving.
type AdminService struct {
	mu        sync.Mutex
	store     *VoteStore
	results   *ResultsStore
	teams     *TeamRegistry
	awards    AwardMap
	publisher Publisher
}

func NewAdminService(store *VoteStore, results *ResultsStore, teams *TeamRegistry, awards AwardMap, publisher Publisher) *AdminService {
	return &AdminService{
		store:     store,
		results:   results,
		teams:     teams,
		awards:    awards,
		publisher: publisher,
	}
}

// RecomputeResults aggregates a point-in-time copy of the votes, stores the
// new snapshot and publishes it.
func (s *AdminService) RecomputeResults(ctx context.Context) (ResultsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	votes := s.store.Snapshot()
	snapshot := ComputeResults(votes, s.teams.Index(), s.awards)
	if err := s.results.Replace(ctx, snapshot); err != nil {
		return nil, err
	}
	stored := s.results.Current()
	for category, cr := range stored {
		logging.Log.Infof("RESULTS: %s ranked %d teams", category, len(cr.Teams))
	}
	s.publisher.PublishResultsUpdate(stored)
	return stored, nil
}

// StartAwardCeremony re-publishes the current results and then the ceremony
// signal, so every viewer has the final ranking before the reveal.
func (s *AdminService) StartAwardCeremony() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publisher.PublishResultsUpdate(s.results.Current())
	s.publisher.NotifyAwardCeremonyStarted()
	logging.Log.Info("RESULTS: award ceremony started")
}

// ResetAll clears every vote and the results snapshot.
func (s *AdminService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ResetAll(ctx); err != nil {
		return err
	}
	if err := s.results.Replace(ctx, EmptyResults(s.awards)); err != nil {
		return err
	}
	s.store.PublishTally(s.publisher)
	s.publisher.PublishResultsUpdate(s.results.Current())
	return nil
}

// ResetTeam clears one team's votes. Results keep their last computed value
// until the next recompute.
func (s *AdminService) ResetTeam(ctx context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ResetTeam(ctx, teamID); err != nil {
		return err
	}
	s.store.PublishTally(s.publisher)
	return nil
}

func (s *AdminService) RegisterTeam(ctx context.Context, team Team) error {
	if err := s.teams.Register(ctx, team); err != nil {
		return err
	}
	logging.Log.Infof("VOTE: registered team %s (%s)", team.ID, team.Name)
	s.store.PublishTally(s.publisher)
	return nil
}
