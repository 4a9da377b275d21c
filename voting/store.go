package voting

import (
	"context"
	"errors"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"slices"
	"sync"
	"time"
)

const voteIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// VoteRecord is immutable once appended to the store.
type VoteRecord struct {
	ID          string    `json:"id"`
	SubmitterID string    `json:"-"`
	Scores      Rubric    `json:"scores"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type TeamVotes struct {
	VoteCount int           `json:"voteCount"`
	Votes     []*VoteRecord `json:"votes"`
}

// VoteTally is the per-team view served to viewers, keyed by team id.
type VoteTally map[string]*TeamVotes

type VoteReceipt struct {
	VoteID    string `json:"voteId"`
	TeamID    string `json:"teamId"`
	VoteCount int    `json:"voteCount"`
}

// Persisted layout of the votes document. Unlike VoteRecord it keeps the
// submitter so duplicate detection survives a restart.
type storedVote struct {
	ID          string    `json:"id"`
	SubmitterID string    `json:"submitterId"`
	Scores      Rubric    `json:"scores"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type storedTeamVotes struct {
	VoteCount int          `json:"voteCount"`
	Votes     []storedVote `json:"votes"`
}

type votesDocument map[string]*storedTeamVotes

// VoteStore owns the raw votes. Writes are serialized by one lock because
// every write replaces the whole votes document in storage.
type VoteStore struct {
	mu         sync.RWMutex
	publishMu  sync.Mutex
	teams      *TeamRegistry
	rubrics    []RubricGroup
	votes      map[string][]*VoteRecord
	submitters map[string]map[string]struct{}
	docs       storage.DocumentStorage
	now        func() time.Time
}

// NewVoteStore loads the persisted votes document. A failed load leaves the
// store empty and usable.
func NewVoteStore(ctx context.Context, teams *TeamRegistry, rubrics []RubricGroup, docs storage.DocumentStorage) *VoteStore {
	s := &VoteStore{
		teams:      teams,
		rubrics:    rubrics,
		votes:      make(map[string][]*VoteRecord),
		submitters: make(map[string]map[string]struct{}),
		docs:       docs,
		now:        func() time.Time { return time.Now().UTC() },
	}
	s.load(ctx)
	return s
}

func (s *VoteStore) load(ctx context.Context) {
	var doc votesDocument
	err := s.docs.Load(ctx, storage.DocumentVotes, &doc)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		logging.Log.Info("VOTE: no votes document yet, starting empty")
		return
	}
	if err != nil {
		logging.Log.Warnf("VOTE: failed to load votes, running with empty store: %v", err)
		return
	}

	total := 0
	for teamID, tv := range doc {
		if tv == nil {
			continue
		}
		if !s.teams.Has(teamID) {
			logging.Log.Warnf("VOTE: loaded %d votes for unregistered team %s", len(tv.Votes), teamID)
		}
		for _, v := range tv.Votes {
			s.votes[teamID] = append(s.votes[teamID], &VoteRecord{
				ID:          v.ID,
				SubmitterID: v.SubmitterID,
				Scores:      v.Scores,
				Comment:     v.Comment,
				SubmittedAt: v.SubmittedAt,
			})
			s.addSubmitter(teamID, v.SubmitterID)
			total++
		}
	}
	logging.Log.Infof("VOTE: loaded %d votes for %d teams", total, len(s.votes))
}

// RecordVote checks team existence, then the rubric, then the submitter, and
// stops at the first failure. The vote is only visible once it is persisted.
func (s *VoteStore) RecordVote(ctx context.Context, teamID string, rubric Rubric, comment, submitterID string) (*VoteReceipt, error) {
	if !s.teams.Has(teamID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	if err := ValidateRubric(s.rubrics, rubric); err != nil {
		return nil, err
	}
	if submitterID == "" {
		return nil, ErrMissingSubmitter
	}

	id, err := gonanoid.Generate(voteIDAlphabet, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to generate vote id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.submitters[teamID][submitterID]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSubmission, teamID)
	}

	record := &VoteRecord{
		ID:          id,
		SubmitterID: submitterID,
		Scores:      cloneRubric(rubric),
		Comment:     comment,
		SubmittedAt: s.now(),
	}
	next := append(slices.Clip(s.votes[teamID]), record)

	if err := s.persist(ctx, teamID, next); err != nil {
		return nil, err
	}
	s.votes[teamID] = next
	s.addSubmitter(teamID, submitterID)

	return &VoteReceipt{VoteID: id, TeamID: teamID, VoteCount: len(next)}, nil
}

func (s *VoteStore) CountFor(teamID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes[teamID])
}

// Snapshot returns a point-in-time copy of every team's votes. The records
// themselves are shared and must not be modified.
func (s *VoteStore) Snapshot() map[string][]*VoteRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]*VoteRecord, len(s.votes))
	for teamID, votes := range s.votes {
		if len(votes) == 0 {
			continue
		}
		out[teamID] = slices.Clone(votes)
	}
	return out
}

// Tally lists every registered team, including those without votes.
func (s *VoteStore) Tally() VoteTally {
	teams := s.teams.All()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(VoteTally, len(teams))
	for _, t := range teams {
		votes := slices.Clone(s.votes[t.ID])
		if votes == nil {
			votes = []*VoteRecord{}
		}
		out[t.ID] = &TeamVotes{VoteCount: len(votes), Votes: votes}
	}
	return out
}

// PublishTally takes the current tally and hands it to publisher. Calls are
// serialized so a tally taken earlier is never delivered after a later one.
func (s *VoteStore) PublishTally(publisher Publisher) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	publisher.PublishVoteUpdate(s.Tally())
}

func (s *VoteStore) ResetTeam(ctx context.Context, teamID string) error {
	if !s.teams.Has(teamID) {
		return fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, teamID, nil); err != nil {
		return err
	}
	delete(s.votes, teamID)
	delete(s.submitters, teamID)
	logging.Log.Infof("VOTE: reset votes of %s", teamID)
	return nil
}

func (s *VoteStore) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.docs.Save(ctx, storage.DocumentVotes, votesDocument{}); err != nil {
		logging.Log.Errorf("VOTE: failed to persist reset: %v", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.votes = make(map[string][]*VoteRecord)
	s.submitters = make(map[string]map[string]struct{})
	logging.Log.Info("VOTE: reset all votes")
	return nil
}

// persist saves the document as it would look with teamID's sequence replaced
// by votes. Caller holds the write lock.
func (s *VoteStore) persist(ctx context.Context, teamID string, votes []*VoteRecord) error {
	doc := make(votesDocument, len(s.votes)+1)
	for id, seq := range s.votes {
		if id == teamID {
			continue
		}
		doc[id] = storedSequence(seq)
	}
	if len(votes) > 0 {
		doc[teamID] = storedSequence(votes)
	}

	if err := s.docs.Save(ctx, storage.DocumentVotes, doc); err != nil {
		logging.Log.Errorf("VOTE: failed to persist votes for %s: %v", teamID, err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *VoteStore) addSubmitter(teamID, submitterID string) {
	set, ok := s.submitters[teamID]
	if !ok {
		set = make(map[string]struct{})
		s.submitters[teamID] = set
	}
	set[submitterID] = struct{}{}
}

func storedSequence(votes []*VoteRecord) *storedTeamVotes {
	out := &storedTeamVotes{VoteCount: len(votes), Votes: make([]storedVote, 0, len(votes))}
	for _, v := range votes {
		out.Votes = append(out.Votes, storedVote{
			ID:          v.ID,
			SubmitterID: v.SubmitterID,
			Scores:      v.Scores,
			Comment:     v.Comment,
			SubmittedAt: v.SubmittedAt,
		})
	}
	return out
}
