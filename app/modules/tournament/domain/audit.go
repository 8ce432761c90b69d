package tournamentdomain

import (
	"sort"
	"strings"
)

// ForfeitKind classifies why a player's forfeit sentinel was entered,
// recovered from the judge's comment on the zero-value log entry.
type ForfeitKind string

const (
	ForfeitAbsent       ForfeitKind = "absent"
	ForfeitDisqualified ForfeitKind = "disqualified"
	ForfeitWithdrawn    ForfeitKind = "forfeit"
	ForfeitUnknown      ForfeitKind = ""
)

// IsCorrection reports whether a log entry records a genuine change to an
// already-entered score, as opposed to a first-time entry (old value 0).
// The board highlights corrected cells.
func IsCorrection(log ScoreLog) bool {
	return log.OldValue != 0 && log.OldValue != log.NewValue
}

// ForfeitReason inspects a player's audit trail and returns the kind of
// the most recent judge-entered forfeit, or ForfeitUnknown when no
// annotated forfeit log exists. The sentinel value itself carries no
// reason, so the comment is the only source.
func ForfeitReason(logs []ScoreLog) ForfeitKind {
	forfeits := make([]ScoreLog, 0)
	for _, l := range logs {
		if l.NewValue == 0 && l.ModifiedByType == ModifiedByJudge && l.Comment != "" {
			forfeits = append(forfeits, l)
		}
	}
	if len(forfeits) == 0 {
		return ForfeitUnknown
	}
	sort.Slice(forfeits, func(i, j int) bool {
		return forfeits[i].ModifiedAt.After(forfeits[j].ModifiedAt)
	})

	comment := strings.ToLower(forfeits[0].Comment)
	switch {
	case strings.Contains(comment, string(ForfeitAbsent)):
		return ForfeitAbsent
	case strings.Contains(comment, string(ForfeitDisqualified)):
		return ForfeitDisqualified
	case strings.Contains(comment, string(ForfeitWithdrawn)):
		return ForfeitWithdrawn
	}
	return ForfeitUnknown
}

// CorrectedCells returns the set of (courseID, hole) cells that were
// genuinely corrected after initial entry, for one player's logs.
func CorrectedCells(logs []ScoreLog) map[CellKey]ScoreLog {
	out := make(map[CellKey]ScoreLog)
	for _, l := range logs {
		if !IsCorrection(l) {
			continue
		}
		key := CellKey{CourseID: l.CourseID, Hole: l.HoleNumber}
		if prev, ok := out[key]; !ok || l.ModifiedAt.After(prev.ModifiedAt) {
			out[key] = l
		}
	}
	return out
}

// CellKey addresses one hole cell within a player's scorecard.
type CellKey struct {
	CourseID int
	Hole     int
}
