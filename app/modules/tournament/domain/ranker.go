package tournamentdomain

import (
	"errors"
	"sort"
)

// ErrNilSnapshot is returned for the one programmer-error case the engine
// refuses to absorb. Every data-shape problem inside a non-nil snapshot
// degrades gracefully instead.
var ErrNilSnapshot = errors.New("tournament: nil snapshot")

// RankGroup sorts one group's aggregated players and assigns competition
// ranks. Players without any score and forfeited players are moved to the
// tail with a nil rank. Equal comparator results share a rank; the next
// distinct player gets rank = position+1, so a three-way tie for first is
// followed by rank 4.
func RankGroup(players []AggregatedPlayer, coursesForGroup []Course) []AggregatedPlayer {
	ranked := make([]AggregatedPlayer, 0, len(players))
	unranked := make([]AggregatedPlayer, 0)
	for _, p := range players {
		if p.HasAnyScore && !p.HasForfeited {
			ranked = append(ranked, p)
		} else {
			p.Rank = nil
			unranked = append(unranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j], coursesForGroup) < 0
	})

	for i := range ranked {
		var rank int
		switch {
		case i == 0:
			rank = 1
		case Compare(ranked[i], ranked[i-1], coursesForGroup) == 0:
			rank = *ranked[i-1].Rank
		default:
			rank = i + 1
		}
		r := rank
		ranked[i].Rank = &r
	}

	return append(ranked, unranked...)
}

// Rank transforms a snapshot into the complete leaderboard: aggregation,
// per-group ranking, sudden-death overlay. The computation is pure and
// deterministic; calling it twice on the same snapshot yields the same
// output.
func Rank(snap *Snapshot) (*Leaderboard, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	playerIDs := make([]string, 0, len(snap.Players))
	for id := range snap.Players {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)

	byGroup := make(map[string][]AggregatedPlayer)
	for _, id := range playerIDs {
		agg := AggregatePlayer(snap.Players[id], snap)
		byGroup[agg.Group] = append(byGroup[agg.Group], agg)
	}

	groupNames := make([]string, 0, len(byGroup))
	for name := range byGroup {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	board := &Leaderboard{}
	for _, name := range groupNames {
		members := byGroup[name]
		// Every member of a group shares the same assignment, so the
		// tie-break course list can come from any member.
		var coursesForGroup []Course
		if len(members) > 0 {
			coursesForGroup = members[0].AssignedCourses
		}
		board.Groups = append(board.Groups, GroupStanding{
			Group:   name,
			Players: RankGroup(members, coursesForGroup),
		})
	}

	board.IndividualSuddenDeath = RankSuddenDeath(snap.SuddenDeath.Individual, snap.Players)
	board.TeamSuddenDeath = RankSuddenDeath(snap.SuddenDeath.Team, snap.Players)
	OverlayRanks(board)

	return board, nil
}
