package tournamentdomain

// ParScore is the result of scoring one course against its par table.
// PlusMinus is nil when no hole had both a score and a configured par.
type ParScore struct {
	Sum       int
	PlusMinus *int
}

// CalcParScore sums entered hole scores against the par table. A hole
// contributes to both accumulators only when the score and the par are
// both present. The asymmetry is deliberate: the running total must
// display before a course's par table is fully configured, so callers
// sum raw strokes separately and use PlusMinus only when non-nil.
func CalcParScore(pars, holeScores [HolesPerCourse]*int) ParScore {
	sum := 0
	parSum := 0
	played := 0
	for h := 0; h < HolesPerCourse; h++ {
		if holeScores[h] == nil || pars[h] == nil {
			continue
		}
		sum += *holeScores[h]
		parSum += *pars[h]
		played++
	}
	if played == 0 {
		return ParScore{}
	}
	pm := sum - parSum
	return ParScore{Sum: sum, PlusMinus: &pm}
}
