package voting

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func scenarioVotes() map[string][]*VoteRecord {
	return map[string][]*VoteRecord{
		"team1": {
			{ID: "a", Scores: defaultRubric(4, 3)},
		},
		"team2": {
			{ID: "b", Scores: defaultRubric(3, 4)},
			{ID: "c", Scores: defaultRubric(4, 5)},
		},
	}
}

func teamIndex() map[string]Team {
	return NewTeamRegistry(DefaultConfig().Teams).Index()
}

func TestComputeResults(t *testing.T) {
	awards := DefaultConfig().AwardMap()

	t.Run("Happy path - ranks teams per category", func(t *testing.T) {
		results := ComputeResults(scenarioVotes(), teamIndex(), awards)
		require.Len(t, results, 2)

		presentation := results["presentationAward"].Teams
		require.Len(t, presentation, 2)
		assert.Equal(t, "team1", presentation[0].TeamID)
		assert.Equal(t, 4.0, presentation[0].Average)
		assert.Equal(t, 1, presentation[0].Rank)
		assert.Equal(t, "team2", presentation[1].TeamID)
		assert.Equal(t, 3.5, presentation[1].Average)
		assert.Equal(t, 2, presentation[1].Rank)
		assert.Equal(t, 2, presentation[1].VoteCount)
		assert.Equal(t, 3.5, presentation[1].Scores["grammar"])
		assert.Equal(t, "Team Beta", presentation[1].Name)

		implementation := results["implementationAward"].Teams
		require.Len(t, implementation, 2)
		assert.Equal(t, "team2", implementation[0].TeamID)
		assert.Equal(t, 4.5, implementation[0].Average)
		assert.Equal(t, "team1", implementation[1].TeamID)
		assert.Equal(t, 3.0, implementation[1].Average)
	})

	t.Run("Happy path - teams without votes are left out", func(t *testing.T) {
		results := ComputeResults(scenarioVotes(), teamIndex(), awards)
		for _, cr := range results {
			for _, entry := range cr.Teams {
				assert.NotEqual(t, "team3", entry.TeamID)
			}
		}
	})

	t.Run("Happy path - equal averages go to the lower team id", func(t *testing.T) {
		teams := teamIndex()
		teams["team10"] = Team{ID: "team10", Name: "Team Delta"}
		votes := map[string][]*VoteRecord{
			"team10": {{Scores: defaultRubric(4, 4)}},
			"team2":  {{Scores: defaultRubric(4, 4)}},
		}

		results := ComputeResults(votes, teams, awards)
		for _, cr := range results {
			require.Len(t, cr.Teams, 2)
			assert.Equal(t, "team2", cr.Teams[0].TeamID)
			assert.Equal(t, 1, cr.Teams[0].Rank)
			assert.Equal(t, "team10", cr.Teams[1].TeamID)
			assert.Equal(t, 2, cr.Teams[1].Rank)
		}
	})

	t.Run("Happy path - no votes gives empty categories", func(t *testing.T) {
		results := ComputeResults(map[string][]*VoteRecord{}, teamIndex(), awards)
		require.Len(t, results, 2)
		for _, cr := range results {
			assert.NotNil(t, cr.Teams)
			assert.Empty(t, cr.Teams)
		}
	})

	t.Run("Happy path - same input serializes identically", func(t *testing.T) {
		first, err := json.Marshal(ComputeResults(scenarioVotes(), teamIndex(), awards))
		require.NoError(t, err)
		second, err := json.Marshal(ComputeResults(scenarioVotes(), teamIndex(), awards))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})
}

func TestComputeOverallWinner(t *testing.T) {
	awards := DefaultConfig().AwardMap()
	weights := DefaultConfig().Weights()

	t.Run("Happy path - weighted total picks the winner", func(t *testing.T) {
		results := ComputeResults(scenarioVotes(), teamIndex(), awards)

		winner := ComputeOverallWinner(results, weights)
		require.NotNil(t, winner)
		assert.Equal(t, "team2", winner.TeamID)
		assert.Equal(t, 4.0, winner.TotalScore)
		assert.Equal(t, 3.5, winner.Scores["presentationAward"])
		assert.Equal(t, 4.5, winner.Scores["implementationAward"])
	})

	t.Run("Happy path - missing category counts as zero", func(t *testing.T) {
		results := ResultsSnapshot{
			"presentationAward": {Teams: []TeamResult{
				{TeamID: "team3", Average: 5},
				{TeamID: "team1", Average: 4},
			}},
			"implementationAward": {Teams: []TeamResult{
				{TeamID: "team1", Average: 4},
			}},
		}

		winner := ComputeOverallWinner(results, weights)
		require.NotNil(t, winner)
		assert.Equal(t, "team1", winner.TeamID)
		assert.Equal(t, 4.0, winner.TotalScore)
	})

	t.Run("Happy path - tie goes to the lower team id", func(t *testing.T) {
		results := ResultsSnapshot{
			"presentationAward":   {Teams: []TeamResult{{TeamID: "team10", Average: 4}, {TeamID: "team2", Average: 3}}},
			"implementationAward": {Teams: []TeamResult{{TeamID: "team2", Average: 4}, {TeamID: "team10", Average: 3}}},
		}

		winner := ComputeOverallWinner(results, weights)
		require.NotNil(t, winner)
		assert.Equal(t, "team2", winner.TeamID)
	})

	t.Run("Happy path - nil weights split evenly", func(t *testing.T) {
		results := ComputeResults(scenarioVotes(), teamIndex(), awards)
		winner := ComputeOverallWinner(results, nil)
		require.NotNil(t, winner)
		assert.Equal(t, "team2", winner.TeamID)
		assert.Equal(t, 4.0, winner.TotalScore)
	})

	t.Run("Unhappy path - any empty category means no winner", func(t *testing.T) {
		results := EmptyResults(awards)
		results["presentationAward"] = &CategoryResults{Teams: []TeamResult{{TeamID: "team1", Average: 5}}}
		assert.Nil(t, ComputeOverallWinner(results, weights))
		assert.Nil(t, ComputeOverallWinner(ResultsSnapshot{}, weights))
	})
}
