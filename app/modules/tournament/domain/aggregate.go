package tournamentdomain

import "sort"

// AggregatePlayer builds the derived view of one player from the raw
// snapshot. It never fails: an unknown group, a score referencing a
// missing course, or an invalid stroke value all degrade to "not played"
// so the board keeps rendering on partial configuration.
func AggregatePlayer(p Player, snap *Snapshot) AggregatedPlayer {
	agg := AggregatedPlayer{
		ID:             p.ID,
		DisplayName:    p.DisplayName(),
		Club:           p.Club(),
		Jo:             p.Jo,
		Group:          p.Group,
		Type:           p.Type,
		CourseScores:   make(map[int]int),
		DetailedScores: make(map[int]map[int]int),
	}

	group, ok := snap.Groups[p.Group]
	if !ok {
		return agg
	}

	// Assigned = true entries of the group's course map intersected with
	// courses that actually exist, in ascending course-ID order.
	for courseID, assigned := range group.Courses {
		if !assigned {
			continue
		}
		course, exists := snap.Courses[courseID]
		if !exists {
			continue
		}
		agg.AssignedCourses = append(agg.AssignedCourses, course)
	}
	sort.Slice(agg.AssignedCourses, func(i, j int) bool {
		return agg.AssignedCourses[i].ID < agg.AssignedCourses[j].ID
	})

	// Totals always run over every assigned course so that hiding a
	// course from the board cannot change standings.
	parTotal := 0
	playedWithPar := 0
	for _, course := range agg.AssignedCourses {
		entered := snap.Scores[p.ID][course.ID]
		detail := make(map[int]int, len(entered))
		courseTotal := 0
		for hole := 1; hole <= HolesPerCourse; hole++ {
			v, ok := entered[hole]
			if !ok || v < 0 {
				// Negative or otherwise invalid values are coerced to
				// "not played"; the store enforces no schema.
				continue
			}
			detail[hole] = v
			courseTotal += v
			agg.HasAnyScore = true
			if v == 0 {
				agg.HasForfeited = true
			}
			if par := course.Pars[hole-1]; par != nil {
				parTotal += *par
				playedWithPar++
			}
		}
		agg.DetailedScores[course.ID] = detail
		agg.CourseScores[course.ID] = courseTotal
		agg.TotalScore += courseTotal

		if course.IsActive {
			agg.VisibleCourses = append(agg.VisibleCourses, course)
		}
	}

	if playedWithPar > 0 {
		pmTotal := 0
		for _, course := range agg.AssignedCourses {
			for hole, v := range agg.DetailedScores[course.ID] {
				if course.Pars[hole-1] != nil {
					pmTotal += v
				}
			}
		}
		pm := pmTotal - parTotal
		agg.PlusMinus = &pm
	}

	return agg
}

// HoleScoreArray converts a player's entered scores for one course into
// the fixed 9-slot form used for display and par scoring.
func (a AggregatedPlayer) HoleScoreArray(courseID int) [HolesPerCourse]*int {
	var out [HolesPerCourse]*int
	for hole, v := range a.DetailedScores[courseID] {
		if hole < 1 || hole > HolesPerCourse {
			continue
		}
		s := v
		out[hole-1] = &s
	}
	return out
}
