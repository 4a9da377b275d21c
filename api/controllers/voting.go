package controllers

import (
	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/gin-gonic/gin"
	"net/http"
	"slices"
	"strings"
)

type VotingController struct {
	submission *voting.SubmissionService
	query      *voting.QueryService
	teams      *voting.TeamRegistry
	config     voting.Config
}

func NewVotingController(submission *voting.SubmissionService, query *voting.QueryService, teams *voting.TeamRegistry, config voting.Config) *VotingController {
	return &VotingController{
		submission: submission,
		query:      query,
		teams:      teams,
		config:     config,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/submit-votes", c.submitVotes)
	group.GET("/voting-status", c.votingStatus)
	group.GET("/teams", c.listTeams)
}

// submitVotes godoc
// @Summary Submit team evaluations
// @Description Records one rubric evaluation per team for the calling submitter. Teams are processed in id order; the response status is the one of the first failing team.
// @Tags voting
// @Accept json
// @Produce json
// @Param X-Submitter-ID header string true "Submitter identity (session or device token)"
// @Param votes body models.SubmitVotesRequest true "Team id to evaluation"
// @Success 200 {object} models.SubmitVotesResponse
// @Failure 400 {object} models.ErrorResponse "Malformed body, team id or rubric"
// @Failure 404 {object} models.SubmitVotesResponse "Unknown team"
// @Failure 409 {object} models.SubmitVotesResponse "Submitter already voted for a team"
// @Failure 500 {object} models.SubmitVotesResponse "Votes could not be saved"
// @Router /api/submit-votes [post]
func (c *VotingController) submitVotes(g *gin.Context) {
	submitterID := strings.TrimSpace(g.GetHeader(transport.HeaderSubmitterID))
	if submitterID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing " + transport.HeaderSubmitterID + " header"})
		return
	}

	var req models.SubmitVotesRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Warnf("VOTE: invalid submit request: %v", err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid data format"})
		return
	}
	if len(req) == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "no votes in request"})
		return
	}

	teamIDs := make([]string, 0, len(req))
	for id := range req {
		if !voting.TeamIDPattern.MatchString(id) {
			logging.Log.Warnf("VOTE: invalid team id in request: %q", id)
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id: " + id})
			return
		}
		teamIDs = append(teamIDs, id)
	}
	slices.SortFunc(teamIDs, voting.CompareTeamIDs)

	status := http.StatusOK
	resp := models.SubmitVotesResponse{
		Status:  models.StatusSuccess,
		Results: make([]models.TeamSubmitResult, 0, len(teamIDs)),
	}
	for _, id := range teamIDs {
		entry := req[id]
		receipt, err := c.submission.Submit(g.Request.Context(), id, entry.Scores, entry.Comment, submitterID)
		if err != nil {
			if status == http.StatusOK {
				status = statusForError(err)
				resp.Status = models.StatusError
				resp.Message = err.Error()
			}
			resp.Results = append(resp.Results, models.TeamSubmitResult{
				TeamID: id,
				Status: models.StatusError,
				Error:  err.Error(),
			})
			continue
		}
		resp.Results = append(resp.Results, models.TransformReceipt(receipt))
	}

	g.JSON(status, resp)
}

// votingStatus godoc
// @Summary Current vote counts and results
// @Description Returns vote counts per team, the last computed results and the overall winner when every award has ranked teams
// @Tags voting
// @Produce json
// @Success 200 {object} models.VotingStatusResponse
// @Router /api/voting-status [get]
func (c *VotingController) votingStatus(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformSnapshot(c.query.GetSnapshot()))
}

// listTeams godoc
// @Summary List teams and rubric definitions
// @Tags voting
// @Produce json
// @Success 200 {object} models.TeamsResponse
// @Router /api/teams [get]
func (c *VotingController) listTeams(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformTeams(c.teams.All(), c.config))
}
