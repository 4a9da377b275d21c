package voting

import "errors"

var ErrUnknownTeam = errors.New("unknown team")
var ErrInvalidRubric = errors.New("invalid rubric")
var ErrDuplicateSubmission = errors.New("submitter already voted for this team")
var ErrMissingSubmitter = errors.New("submitter id is required")
var ErrPersistence = errors.New("persistence failure")
var ErrInvalidConfiguration = errors.New("invalid configuration")
var ErrTeamAlreadyExists = errors.New("team already exists")
var ErrInvalidTeamID = errors.New("malformed team id")
