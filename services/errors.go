package services

import (
	"errors"

	"github.com/Dosada05/tennis-finals/brackets"
)

// Ошибки сервисного слоя. Messages are shown to the user as is.
var (
	ErrInvalidScore         = errors.New("invalid score")
	ErrScheduleShape        = brackets.ErrScheduleShape
	ErrMatchNotFound        = errors.New("match not found")
	ErrAmbiguousMatch       = errors.New("more than one match fits these players; specify the match type")
	ErrTournamentNotFound   = errors.New("tournament not found; create a new tournament first")
	ErrPlayoffsNotReady     = brackets.ErrPlayoffsNotReady
	ErrPlayoffsAlreadyExist = brackets.ErrPlayoffsAlreadyExist
	ErrResultsNotReady      = brackets.ErrResultsNotReady
	ErrBracketInconsistency = brackets.ErrBracketInconsistency
	ErrInvalidMatchType     = errors.New("unknown match type")
	ErrNotEnoughPlayers     = errors.New("not enough registered players for a tournament")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerExists         = errors.New("player is already registered")
	ErrInvalidPlayer        = errors.New("invalid player data")
	ErrInvalidPassword      = errors.New("invalid password")
)

type ErrorKind string

const (
	KindValidation  ErrorKind = "ValidationError"
	KindNotFound    ErrorKind = "NotFoundError"
	KindState       ErrorKind = "StateError"
	KindConsistency ErrorKind = "ConsistencyError"
	KindAuth        ErrorKind = "AuthError"
)

type errorClass struct {
	err  error
	kind ErrorKind
	code string
}

// errorCatalog is checked in order with errors.Is.
var errorCatalog = []errorClass{
	{ErrInvalidScore, KindValidation, "InvalidScoreError"},
	{ErrScheduleShape, KindValidation, "ScheduleShapeError"},
	{ErrInvalidMatchType, KindValidation, "InvalidMatchTypeError"},
	{ErrInvalidPlayer, KindValidation, "InvalidPlayerError"},
	{ErrMatchNotFound, KindNotFound, "MatchNotFoundError"},
	{ErrAmbiguousMatch, KindNotFound, "AmbiguousMatchError"},
	{ErrTournamentNotFound, KindNotFound, "TournamentNotFoundError"},
	{ErrPlayerNotFound, KindNotFound, "PlayerNotFoundError"},
	{ErrPlayoffsNotReady, KindState, "PlayoffsNotReadyError"},
	{ErrPlayoffsAlreadyExist, KindState, "PlayoffsAlreadyExistError"},
	{ErrResultsNotReady, KindState, "ResultsNotReadyError"},
	{ErrNotEnoughPlayers, KindState, "NotEnoughPlayersError"},
	{ErrPlayerExists, KindConsistency, "PlayerExistsError"},
	{ErrBracketInconsistency, KindConsistency, "BracketInconsistencyError"},
	{ErrInvalidPassword, KindAuth, "InvalidPasswordError"},
}

// Classify returns the kind and code of a service error. ok is false for
// errors outside the catalog, such as storage failures.
func Classify(err error) (kind ErrorKind, code string, ok bool) {
	for _, c := range errorCatalog {
		if errors.Is(err, c.err) {
			return c.kind, c.code, true
		}
	}
	return "", "", false
}
