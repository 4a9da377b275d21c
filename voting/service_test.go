package voting

import (
	"context"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sync"
	"testing"
	"time"
)

type testServices struct {
	docs       *flakyStorage
	store      *VoteStore
	results    *ResultsStore
	publisher  *recordingPublisher
	submission *SubmissionService
	query      *QueryService
	admin      *AdminService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	conf := DefaultConfig()
	docs := &flakyStorage{inner: storage.NewMemoryDocumentStorage()}
	store, teams := newTestStore(t, docs)
	results := NewResultsStore(context.Background(), conf.AwardMap(), docs)
	publisher := &recordingPublisher{}

	return &testServices{
		docs:       docs,
		store:      store,
		results:    results,
		publisher:  publisher,
		submission: NewSubmissionService(store, publisher),
		query:      NewQueryService(store, results, conf.Weights()),
		admin:      NewAdminService(store, results, teams, conf.AwardMap(), publisher),
	}
}

func (s *testServices) submitScenario(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := s.submission.Submit(ctx, "team1", defaultRubric(4, 3), "", "voter-1")
	require.NoError(t, err)
	_, err = s.submission.Submit(ctx, "team2", defaultRubric(3, 4), "", "voter-1")
	require.NoError(t, err)
	_, err = s.submission.Submit(ctx, "team2", defaultRubric(4, 5), "", "voter-2")
	require.NoError(t, err)
}

func TestSubmissionService(t *testing.T) {
	t.Run("Happy path - publishes counts and leaves results alone", func(t *testing.T) {
		s := newTestServices(t)

		receipt, err := s.submission.Submit(context.Background(), "team1", defaultRubric(4, 3), "good", "voter-1")
		require.NoError(t, err)
		assert.Equal(t, 1, receipt.VoteCount)

		assert.Equal(t, []string{"voting_update"}, s.publisher.Events())
		assert.Equal(t, 1, s.publisher.lastTally["team1"].VoteCount)
		assert.Empty(t, s.results.Current()["presentationAward"].Teams)
	})

	t.Run("Unhappy path - rejected vote publishes nothing", func(t *testing.T) {
		s := newTestServices(t)

		_, err := s.submission.Submit(context.Background(), "team9", defaultRubric(4, 3), "", "voter-1")
		assert.ErrorIs(t, err, ErrUnknownTeam)
		assert.Empty(t, s.publisher.Events())
	})
}

func TestQueryService(t *testing.T) {
	s := newTestServices(t)

	t.Run("Happy path - empty snapshot", func(t *testing.T) {
		snap := s.query.GetSnapshot()
		require.Len(t, snap.Votes, 3)
		assert.Equal(t, 0, snap.Votes["team1"].VoteCount)
		require.Len(t, snap.Results, 2)
		assert.Nil(t, snap.OverallWinner)
	})

	t.Run("Happy path - snapshot after aggregation", func(t *testing.T) {
		s.submitScenario(t)
		_, err := s.admin.RecomputeResults(context.Background())
		require.NoError(t, err)

		snap := s.query.GetSnapshot()
		assert.Equal(t, 2, snap.Votes["team2"].VoteCount)
		require.NotNil(t, snap.OverallWinner)
		assert.Equal(t, "team2", snap.OverallWinner.TeamID)
		assert.Len(t, snap.Results["presentationAward"].Teams, 2)
	})
}

func TestAdminService(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path - recompute persists and publishes", func(t *testing.T) {
		s := newTestServices(t)
		s.submitScenario(t)

		results, err := s.admin.RecomputeResults(ctx)
		require.NoError(t, err)
		assert.Equal(t, "team2", results["implementationAward"].Teams[0].TeamID)
		assert.Equal(t, "results_update", s.publisher.Events()[len(s.publisher.Events())-1])

		reloaded := NewResultsStore(ctx, DefaultConfig().AwardMap(), s.docs)
		assert.Equal(t, results, reloaded.Current())
	})

	t.Run("Unhappy path - failed persist keeps previous results", func(t *testing.T) {
		s := newTestServices(t)
		s.submitScenario(t)
		before := s.results.Current()
		events := len(s.publisher.Events())

		s.docs.setFailSaves(true)
		_, err := s.admin.RecomputeResults(ctx)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Equal(t, before, s.results.Current())
		assert.Len(t, s.publisher.Events(), events)
	})

	t.Run("Happy path - ceremony follows the results snapshot", func(t *testing.T) {
		s := newTestServices(t)
		s.admin.StartAwardCeremony()
		assert.Equal(t, []string{"results_update", "award_ceremony"}, s.publisher.Events())
	})

	t.Run("Happy path - reset all clears votes and results", func(t *testing.T) {
		s := newTestServices(t)
		s.submitScenario(t)
		_, err := s.admin.RecomputeResults(ctx)
		require.NoError(t, err)

		require.NoError(t, s.admin.ResetAll(ctx))
		snap := s.query.GetSnapshot()
		for _, tv := range snap.Votes {
			assert.Equal(t, 0, tv.VoteCount)
		}
		for _, cr := range snap.Results {
			assert.Empty(t, cr.Teams)
		}
		events := s.publisher.Events()
		assert.Equal(t, []string{"voting_update", "results_update"}, events[len(events)-2:])
	})

	t.Run("Happy path - reset team keeps results", func(t *testing.T) {
		s := newTestServices(t)
		s.submitScenario(t)
		_, err := s.admin.RecomputeResults(ctx)
		require.NoError(t, err)

		require.NoError(t, s.admin.ResetTeam(ctx, "team2"))
		assert.Equal(t, 0, s.store.CountFor("team2"))
		assert.Equal(t, 1, s.store.CountFor("team1"))
		assert.Len(t, s.results.Current()["presentationAward"].Teams, 2)
	})

	t.Run("Happy path - registered team can be voted for", func(t *testing.T) {
		s := newTestServices(t)
		require.NoError(t, s.admin.RegisterTeam(ctx, Team{ID: "team4", Name: "Team Delta", Members: []string{"Dana"}}))

		_, err := s.submission.Submit(ctx, "team4", defaultRubric(5, 5), "", "voter-1")
		require.NoError(t, err)
		assert.Equal(t, 1, s.query.GetSnapshot().Votes["team4"].VoteCount)

		// after a restart the team, its votes and its results are still there
		store, teams := newTestStore(t, s.docs)
		assert.Equal(t, 1, store.Tally()["team4"].VoteCount)
		results := ComputeResults(store.Snapshot(), teams.Index(), DefaultConfig().AwardMap())
		require.Len(t, results["presentationAward"].Teams, 1)
		assert.Equal(t, "team4", results["presentationAward"].Teams[0].TeamID)

		_, err = store.RecordVote(ctx, "team4", defaultRubric(4, 4), "", "voter-2")
		assert.NoError(t, err)
	})
}

func TestResultsScheduler(t *testing.T) {
	t.Run("Unhappy path - invalid schedule", func(t *testing.T) {
		s := newTestServices(t)
		_, err := NewResultsScheduler(s.admin, "every tuesday", time.Second)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("Happy path - scheduled run recomputes results", func(t *testing.T) {
		s := newTestServices(t)
		s.submitScenario(t)

		scheduler, err := NewResultsScheduler(s.admin, "@every 1h", time.Second)
		require.NoError(t, err)
		scheduler.run()

		assert.Len(t, s.results.Current()["implementationAward"].Teams, 2)
	})
}

// slowCountPublisher keeps the last team1 count it was handed. The random
// pause before recording widens any window where updates could cross.
type slowCountPublisher struct {
	recordingPublisher
	countMu sync.Mutex
	last    int
}

func (p *slowCountPublisher) PublishVoteUpdate(tally VoteTally) {
	time.Sleep(time.Duration(rand.Intn(1000)) * time.Microsecond)
	p.countMu.Lock()
	defer p.countMu.Unlock()
	p.last = tally["team1"].VoteCount
}

func (p *slowCountPublisher) lastCount() int {
	p.countMu.Lock()
	defer p.countMu.Unlock()
	return p.last
}

func TestSubmitConcurrentLastUpdateIsCurrent(t *testing.T) {
	ctx := context.Background()
	const voters = 30

	for round := 0; round < 5; round++ {
		store, _ := newTestStore(t, storage.NewMemoryDocumentStorage())
		publisher := &slowCountPublisher{}
		submission := NewSubmissionService(store, publisher)

		var wg sync.WaitGroup
		for i := 0; i < voters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := submission.Submit(ctx, "team1", defaultRubric(3, 3), "", fmt.Sprintf("voter-%d", i))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		require.Equal(t, voters, store.CountFor("team1"))
		assert.Equal(t, store.CountFor("team1"), publisher.lastCount(), "round %d", round)
	}
}

func TestResultsStore(t *testing.T) {
	ctx := context.Background()
	logging.Log = logrus.New()
	awards := DefaultConfig().AwardMap()

	t.Run("Unhappy path - unreadable results document serves empty categories", func(t *testing.T) {
		docs := &flakyStorage{inner: storage.NewMemoryDocumentStorage(), failLoads: true}
		results := NewResultsStore(ctx, awards, docs)

		current := results.Current()
		require.Len(t, current, len(awards))
		for key := range awards {
			cr, ok := current[key]
			require.True(t, ok, key)
			require.NotNil(t, cr, key)
			assert.NotNil(t, cr.Teams, key)
			assert.Empty(t, cr.Teams, key)
		}

		require.NoError(t, results.Replace(ctx, ComputeResults(scenarioVotes(), teamIndex(), awards)))
		assert.Len(t, results.Current()["presentationAward"].Teams, 2)
	})

	t.Run("Happy path - stored snapshot without a category is filled in", func(t *testing.T) {
		docs := storage.NewMemoryDocumentStorage()
		require.NoError(t, docs.Save(ctx, storage.DocumentResults, ResultsSnapshot{
			"presentationAward": {Teams: []TeamResult{{TeamID: "team1", Average: 4, Rank: 1}}},
		}))

		current := NewResultsStore(ctx, awards, docs).Current()
		assert.Len(t, current["presentationAward"].Teams, 1)
		require.NotNil(t, current["implementationAward"])
		assert.NotNil(t, current["implementationAward"].Teams)
	})
}
