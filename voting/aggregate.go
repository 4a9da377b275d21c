package voting

import (
	"slices"
	"sort"
)

// AwardMap resolves award category key -> rubric group.
type AwardMap map[string]RubricGroup

type TeamResult struct {
	TeamID    string             `json:"id"`
	Name      string             `json:"name"`
	Members   []string           `json:"members"`
	Comment   string             `json:"comment,omitempty"`
	Scores    map[string]float64 `json:"scores"`
	VoteCount int                `json:"voteCount"`
	Average   float64            `json:"average"`
	Rank      int                `json:"rank"`
}

type CategoryResults struct {
	Teams []TeamResult `json:"teams"`
}

// ResultsSnapshot is keyed by award category. It is replaced as a whole and
// never modified after it has been built.
type ResultsSnapshot map[string]*CategoryResults

type OverallWinner struct {
	TeamID     string             `json:"id"`
	Name       string             `json:"name"`
	Members    []string           `json:"members"`
	Comment    string             `json:"comment,omitempty"`
	Scores     map[string]float64 `json:"scores"`
	TotalScore float64            `json:"totalScore"`
}

func EmptyResults(awards AwardMap) ResultsSnapshot {
	out := make(ResultsSnapshot, len(awards))
	for key := range awards {
		out[key] = &CategoryResults{Teams: []TeamResult{}}
	}
	return out
}

// ComputeResults ranks, per award category, every known team that has at
// least one vote scoring the category's rubric group.
func ComputeResults(votes map[string][]*VoteRecord, teams map[string]Team, awards AwardMap) ResultsSnapshot {
	results := EmptyResults(awards)

	teamIDs := make([]string, 0, len(votes))
	for id := range votes {
		if _, ok := teams[id]; ok {
			teamIDs = append(teamIDs, id)
		}
	}
	slices.SortFunc(teamIDs, CompareTeamIDs)

	for category, rubric := range awards {
		ranked := make([]TeamResult, 0, len(teamIDs))
		for _, id := range teamIDs {
			entry, ok := scoreTeam(votes[id], rubric)
			if !ok {
				continue
			}
			team := teams[id]
			entry.TeamID = id
			entry.Name = team.Name
			entry.Members = slices.Clone(team.Members)
			if entry.Members == nil {
				entry.Members = []string{}
			}
			entry.Comment = team.Comment
			ranked = append(ranked, entry)
		}

		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Average != ranked[j].Average {
				return ranked[i].Average > ranked[j].Average
			}
			return CompareTeamIDs(ranked[i].TeamID, ranked[j].TeamID) < 0
		})
		for i := range ranked {
			ranked[i].Rank = i + 1
		}
		results[category] = &CategoryResults{Teams: ranked}
	}
	return results
}

// scoreTeam averages each criterion over the votes that scored it; the overall
// average is the mean of those criterion averages.
func scoreTeam(votes []*VoteRecord, rubric RubricGroup) (TeamResult, bool) {
	sums := make(map[string]int, len(rubric.Criteria))
	counts := make(map[string]int, len(rubric.Criteria))
	contributing := 0

	for _, v := range votes {
		scores, ok := v.Scores[rubric.Key]
		if !ok || len(scores) == 0 {
			continue
		}
		contributing++
		for _, c := range rubric.Criteria {
			if score, ok := scores[c]; ok {
				sums[c] += score
				counts[c]++
			}
		}
	}
	if contributing == 0 {
		return TeamResult{}, false
	}

	averages := make(map[string]float64, len(rubric.Criteria))
	total := 0.0
	for _, c := range rubric.Criteria {
		if counts[c] == 0 {
			continue
		}
		avg := float64(sums[c]) / float64(counts[c])
		averages[c] = avg
		total += avg
	}
	if len(averages) == 0 {
		return TeamResult{}, false
	}

	return TeamResult{
		Scores:    averages,
		VoteCount: contributing,
		Average:   total / float64(len(averages)),
	}, true
}

// ComputeOverallWinner weighs each team's category averages (a category the
// team is missing from counts as 0) and returns the highest total, ties going
// to the lower team id. It returns nil while any category is still empty.
// A nil weights map splits the weight evenly across categories.
func ComputeOverallWinner(results ResultsSnapshot, weights map[string]float64) *OverallWinner {
	if len(results) == 0 {
		return nil
	}
	categories := make([]string, 0, len(results))
	for category, cr := range results {
		if cr == nil || len(cr.Teams) == 0 {
			return nil
		}
		categories = append(categories, category)
	}
	slices.Sort(categories)

	candidates := make(map[string]*OverallWinner)
	for _, category := range categories {
		for _, entry := range results[category].Teams {
			if _, ok := candidates[entry.TeamID]; ok {
				continue
			}
			scores := make(map[string]float64, len(categories))
			for _, c := range categories {
				scores[c] = 0
			}
			candidates[entry.TeamID] = &OverallWinner{
				TeamID:  entry.TeamID,
				Name:    entry.Name,
				Members: slices.Clone(entry.Members),
				Comment: entry.Comment,
				Scores:  scores,
			}
		}
	}

	for _, category := range categories {
		weight := categoryWeight(weights, category, len(categories))
		for _, entry := range results[category].Teams {
			c := candidates[entry.TeamID]
			c.Scores[category] = entry.Average
			c.TotalScore += weight * entry.Average
		}
	}

	var winner *OverallWinner
	for _, c := range candidates {
		if winner == nil ||
			c.TotalScore > winner.TotalScore ||
			(c.TotalScore == winner.TotalScore && CompareTeamIDs(c.TeamID, winner.TeamID) < 0) {
			winner = c
		}
	}
	return winner
}

func categoryWeight(weights map[string]float64, category string, n int) float64 {
	if w, ok := weights[category]; ok {
		return w
	}
	return 1 / float64(n)
}
