package tournamentservice

import "errors"

// Validation errors returned to callers alongside failure payloads.
var (
	ErrInvalidHole        = errors.New("hole number must be between 1 and 9")
	ErrInvalidStrokes     = errors.New("strokes must be zero or positive")
	ErrEmptyPlayerID      = errors.New("player id must not be empty")
	ErrUnknownGroupType   = errors.New("group type must be individual or team")
	ErrNoPlayoffHoles     = errors.New("a playoff needs at least one hole")
	ErrNoPlayoffPlayers   = errors.New("a playoff needs at least one player")
	ErrPlayoffNotActive   = errors.New("no active playoff for this group type")
	ErrNotInPlayoff       = errors.New("player is not part of this playoff")
	ErrHoleNotInPlayoff   = errors.New("hole is not part of this playoff")
	ErrInvalidPerGroup    = errors.New("courses per group must be positive")
)
