package controllers

import (
	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/gin-gonic/gin"
	"net/http"
)

type AdminController struct {
	admin      *voting.AdminService
	weights    map[string]float64
	adminToken string
}

func NewAdminController(admin *voting.AdminService, weights map[string]float64, adminToken string) *AdminController {
	return &AdminController{
		admin:      admin,
		weights:    weights,
		adminToken: adminToken,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware(c.adminToken))

	group.POST("/results/compute", c.computeResults)
	group.POST("/ceremony", c.startCeremony)
	group.POST("/reset", c.resetVotes)
	group.POST("/teams", c.registerTeam)
	group.POST("/teams/:teamId/reset", c.resetTeam)
}

// @Security AdminToken
// computeResults godoc
// @Summary Recompute award results
// @Description Aggregates the current votes into ranked results, stores them and pushes them to live viewers
// @Tags admin
// @Produce json
// @Success 200 {object} models.ComputeResultsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/results/compute [post]
func (c *AdminController) computeResults(g *gin.Context) {
	results, err := c.admin.RecomputeResults(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to compute results: %v", err)
		g.JSON(statusForError(err), &models.ErrorResponse{Error: "could not save results"})
		return
	}

	logging.Log.Info("ADMIN: results recomputed")
	g.JSON(http.StatusOK, &models.ComputeResultsResponse{
		Results:       results,
		OverallWinner: voting.ComputeOverallWinner(results, c.weights),
	})
}

// @Security AdminToken
// startCeremony godoc
// @Summary Start the award ceremony
// @Description Pushes the current results and then the award_ceremony event to every live viewer
// @Tags admin
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /api/admin/ceremony [post]
func (c *AdminController) startCeremony(g *gin.Context) {
	c.admin.StartAwardCeremony()
	g.JSON(http.StatusOK, &models.StatusResponse{Status: models.StatusSuccess})
}

// @Security AdminToken
// resetVotes godoc
// @Summary Reset all votes and results
// @Tags admin
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/reset [post]
func (c *AdminController) resetVotes(g *gin.Context) {
	if err := c.admin.ResetAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset votes: %v", err)
		g.JSON(statusForError(err), &models.ErrorResponse{Error: "could not reset votes"})
		return
	}
	logging.Log.Info("ADMIN: all votes reset")
	g.JSON(http.StatusOK, &models.StatusResponse{Status: models.StatusSuccess, Message: "All votes reset"})
}

// @Security AdminToken
// resetTeam godoc
// @Summary Reset the votes of one team
// @Tags admin
// @Produce json
// @Param teamId path string true "Team id"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/teams/{teamId}/reset [post]
func (c *AdminController) resetTeam(g *gin.Context) {
	teamID := g.Param("teamId")
	if err := c.admin.ResetTeam(g.Request.Context(), teamID); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset %s: %v", teamID, err)
		g.JSON(statusForError(err), &models.ErrorResponse{Error: err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: votes of %s reset", teamID)
	g.JSON(http.StatusOK, &models.StatusResponse{Status: models.StatusSuccess, Message: "votes of " + teamID + " reset"})
}

// @Security AdminToken
// registerTeam godoc
// @Summary Register a team
// @Description Adds a team to the pool of teams that can receive votes
// @Tags admin
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Team could not be saved"
// @Router /api/admin/teams [post]
func (c *AdminController) registerTeam(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("ADMIN: invalid register team request: %v", err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	team := voting.Team{
		ID:      req.ID,
		Name:    req.Name,
		Members: req.Members,
		Comment: req.Comment,
	}
	if err := c.admin.RegisterTeam(g.Request.Context(), team); err != nil {
		logging.Log.Warnf("ADMIN: failed to register team %s: %v", req.ID, err)
		g.JSON(statusForError(err), &models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformTeam(team))
}
