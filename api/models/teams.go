package models

import "github.com/alex-pricope/hackathon-voting/voting"

type TeamCreateRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Comment string   `json:"comment"`
}

type TeamResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Comment string   `json:"comment"`
}

type RubricResponse struct {
	Key      string   `json:"key"`
	Criteria []string `json:"criteria"`
}

type AwardResponse struct {
	Key    string  `json:"key"`
	Rubric string  `json:"rubric"`
	Weight float64 `json:"weight"`
}

type TeamsResponse struct {
	Teams    []TeamResponse   `json:"teams"`
	Rubrics  []RubricResponse `json:"rubrics"`
	Awards   []AwardResponse  `json:"awards"`
	MinScore int              `json:"minScore"`
	MaxScore int              `json:"maxScore"`
}

func TransformTeam(t voting.Team) TeamResponse {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return TeamResponse{
		ID:      t.ID,
		Name:    t.Name,
		Members: members,
		Comment: t.Comment,
	}
}

func TransformTeams(teams []voting.Team, conf voting.Config) TeamsResponse {
	resp := TeamsResponse{
		Teams:    make([]TeamResponse, 0, len(teams)),
		Rubrics:  make([]RubricResponse, 0, len(conf.Rubrics)),
		Awards:   make([]AwardResponse, 0, len(conf.Awards)),
		MinScore: voting.MinScore,
		MaxScore: voting.MaxScore,
	}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, TransformTeam(t))
	}
	for _, r := range conf.Rubrics {
		resp.Rubrics = append(resp.Rubrics, RubricResponse{Key: r.Key, Criteria: r.Criteria})
	}
	for _, a := range conf.Awards {
		resp.Awards = append(resp.Awards, AwardResponse{Key: a.Key, Rubric: a.RubricKey, Weight: a.Weight})
	}
	return resp
}
