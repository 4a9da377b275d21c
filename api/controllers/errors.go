package controllers

import (
	"errors"
	"github.com/alex-pricope/hackathon-voting/voting"
	"net/http"
)

// statusForError maps domain errors to HTTP status codes. Anything unknown is
// an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, voting.ErrUnknownTeam):
		return http.StatusNotFound
	case errors.Is(err, voting.ErrInvalidRubric),
		errors.Is(err, voting.ErrMissingSubmitter),
		errors.Is(err, voting.ErrInvalidTeamID):
		return http.StatusBadRequest
	case errors.Is(err, voting.ErrDuplicateSubmission),
		errors.Is(err, voting.ErrTeamAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
