package models

import (
	"encoding/json"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/voting"
)

const commentsField = "comments"

// SubmitVotesRequest maps team id -> that team's evaluation.
type SubmitVotesRequest map[string]TeamVoteRequest

// TeamVoteRequest is one team's evaluation: every rubric group is a key of
// its own next to the free-text "comments" field, e.g.
// {"presentationSkills": {"grammar": 4, ...}, "comments": "..."}.
type TeamVoteRequest struct {
	Scores  voting.Rubric
	Comment string
}

func (r *TeamVoteRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Scores = make(voting.Rubric, len(raw))
	r.Comment = ""
	for key, value := range raw {
		if key == commentsField {
			if err := json.Unmarshal(value, &r.Comment); err != nil {
				return fmt.Errorf("comments: %w", err)
			}
			continue
		}
		var scores map[string]int
		if err := json.Unmarshal(value, &scores); err != nil {
			return fmt.Errorf("rubric group %s: %w", key, err)
		}
		r.Scores[key] = scores
	}
	return nil
}

func (r TeamVoteRequest) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Scores)+1)
	for group, scores := range r.Scores {
		out[group] = scores
	}
	out[commentsField] = r.Comment
	return json.Marshal(out)
}

type TeamSubmitResult struct {
	TeamID    string `json:"teamId"`
	Status    string `json:"status"`
	VoteID    string `json:"voteId,omitempty"`
	VoteCount int    `json:"voteCount,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SubmitVotesResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message,omitempty"`
	Results []TeamSubmitResult `json:"results"`
}

func TransformReceipt(r *voting.VoteReceipt) TeamSubmitResult {
	return TeamSubmitResult{
		TeamID:    r.TeamID,
		Status:    StatusSuccess,
		VoteID:    r.VoteID,
		VoteCount: r.VoteCount,
	}
}

// VotingStatusResponse is the poll/initial-load view of the live channel.
type VotingStatusResponse struct {
	Votes         voting.VoteTally       `json:"votes"`
	Results       voting.ResultsSnapshot `json:"results"`
	OverallWinner *voting.OverallWinner  `json:"overallWinner,omitempty"`
}

func TransformSnapshot(s voting.Snapshot) VotingStatusResponse {
	return VotingStatusResponse{
		Votes:         s.Votes,
		Results:       s.Results,
		OverallWinner: s.OverallWinner,
	}
}

type ComputeResultsResponse struct {
	Results       voting.ResultsSnapshot `json:"results"`
	OverallWinner *voting.OverallWinner  `json:"overallWinner,omitempty"`
}
