package controllers

import (
	"context"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/live"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"testing"
	"time"
)

const testAdminToken = "test-admin-token"

type testApp struct {
	router      *gin.Engine
	conf        voting.Config
	votes       *voting.VoteStore
	submission  *voting.SubmissionService
	broadcaster *live.Broadcaster
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	logging.Log = logrus.New()

	ctx := context.Background()
	conf := voting.DefaultConfig()
	docs := storage.NewMemoryDocumentStorage()
	teams := voting.LoadTeamRegistry(ctx, conf.Teams, docs)
	votes := voting.NewVoteStore(ctx, teams, conf.Rubrics, docs)
	results := voting.NewResultsStore(ctx, conf.AwardMap(), docs)
	query := voting.NewQueryService(votes, results, conf.Weights())
	broadcaster := live.NewBroadcaster(query.GetSnapshot, 16)
	submission := voting.NewSubmissionService(votes, broadcaster)
	admin := voting.NewAdminService(votes, results, teams, conf.AwardMap(), broadcaster)

	router := transport.NewRouter(gin.TestMode)
	NewVotingController(submission, query, teams, conf).RegisterRoutes(router)
	NewAdminController(admin, conf.Weights(), testAdminToken).RegisterRoutes(router)
	NewLiveController(broadcaster, admin, time.Second).RegisterRoutes(router)

	return &testApp{
		router:      router,
		conf:        conf,
		votes:       votes,
		submission:  submission,
		broadcaster: broadcaster,
	}
}

// teamVote builds a request entry scoring every presentation criterion p and
// every implementation criterion i.
func (a *testApp) teamVote(p, i int, comment string) map[string]interface{} {
	entry := map[string]interface{}{"comments": comment}
	for _, g := range a.conf.Rubrics {
		score := i
		if g.Key == "presentationSkills" {
			score = p
		}
		criteria := make(map[string]int, len(g.Criteria))
		for _, c := range g.Criteria {
			criteria[c] = score
		}
		entry[g.Key] = criteria
	}
	return entry
}

func (a *testApp) rubric(p, i int) voting.Rubric {
	out := make(voting.Rubric)
	for key, value := range a.teamVote(p, i, "") {
		if criteria, ok := value.(map[string]int); ok {
			out[key] = criteria
		}
	}
	return out
}

func submitterHeader(id string) map[string]string {
	return map[string]string{transport.HeaderSubmitterID: id}
}

func adminHeader() map[string]string {
	return map[string]string{transport.HeaderAdminToken: testAdminToken}
}
