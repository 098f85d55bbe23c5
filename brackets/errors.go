package brackets

import "errors"

var (
	ErrScheduleShape        = errors.New("group layout does not fit the configured timetable")
	ErrPlayoffsNotReady     = errors.New("not all group matches are played")
	ErrPlayoffsAlreadyExist = errors.New("playoffs have already been set up for this tournament")
	ErrBracketInconsistency = errors.New("result would change players already placed in the bracket")
	ErrResultsNotReady      = errors.New("tournament results are not available until the final is played")
)
