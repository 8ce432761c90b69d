package tournamentdomain

import "sort"

// RankSuddenDeath computes the playoff table for one session. An
// inactive session, or one missing its holes or participant map, yields
// no rows. Participants absent from the roster are skipped.
//
// The rank-increase rule here is deliberately looser than the primary
// ranker's: ties break only by holes played, total, then name. A player
// who stopped early ranks below one who played further regardless of
// strokes.
func RankSuddenDeath(sess *SuddenDeathSession, players map[string]Player) []SuddenDeathResult {
	if sess == nil || !sess.IsActive || len(sess.Players) == 0 || len(sess.Holes) == 0 {
		return nil
	}

	ids := make([]string, 0, len(sess.Players))
	for id, in := range sess.Players {
		if in {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	results := make([]SuddenDeathResult, 0, len(ids))
	for _, id := range ids {
		p, ok := players[id]
		if !ok {
			continue
		}
		res := SuddenDeathResult{
			PlayerID:      id,
			DisplayName:   p.DisplayName(),
			Club:          p.Club(),
			ScoresPerHole: make(map[int]*int, len(sess.Holes)),
		}
		for _, hole := range sess.Holes {
			if v, ok := sess.Scores[id][hole]; ok {
				s := v
				res.ScoresPerHole[hole] = &s
				res.TotalScore += v
				res.HolesPlayed++
			} else {
				res.ScoresPerHole[hole] = nil
			}
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HolesPlayed != results[j].HolesPlayed {
			return results[i].HolesPlayed > results[j].HolesPlayed
		}
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore < results[j].TotalScore
		}
		return results[i].DisplayName < results[j].DisplayName
	})

	rank := 1
	for i := range results {
		if i > 0 {
			prev, cur := results[i-1], results[i]
			if cur.HolesPlayed < prev.HolesPlayed ||
				(cur.HolesPlayed == prev.HolesPlayed && cur.TotalScore > prev.TotalScore) {
				rank = i + 1
			}
		}
		results[i].Rank = rank
	}

	return results
}

// OverlayRanks replaces the primary rank of every playoff participant
// with their sudden-death rank, then re-sorts each group so overridden
// rows land where the board shows them. Players outside both sessions
// keep their primary rank. The individual and team sessions never share
// a player, so a flat merge is safe.
func OverlayRanks(board *Leaderboard) {
	override := make(map[string]int)
	for _, r := range board.IndividualSuddenDeath {
		override[r.PlayerID] = r.Rank
	}
	for _, r := range board.TeamSuddenDeath {
		override[r.PlayerID] = r.Rank
	}
	if len(override) == 0 {
		return
	}

	for gi := range board.Groups {
		players := board.Groups[gi].Players
		for pi := range players {
			if rank, ok := override[players[pi].ID]; ok {
				r := rank
				players[pi].Rank = &r
			}
		}
		sort.SliceStable(players, func(i, j int) bool {
			ri, rj := rankOrInf(players[i]), rankOrInf(players[j])
			if ri != rj {
				return ri < rj
			}
			return scoreOrInf(players[i]) < scoreOrInf(players[j])
		})
	}
}

const unrankedSentinel = int(^uint(0) >> 1) // max int

func rankOrInf(p AggregatedPlayer) int {
	if p.Rank == nil {
		return unrankedSentinel
	}
	return *p.Rank
}

func scoreOrInf(p AggregatedPlayer) int {
	if !p.HasAnyScore || p.HasForfeited {
		return unrankedSentinel
	}
	return p.TotalScore
}
