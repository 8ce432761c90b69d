package tournamentdomain

import "sort"

// SortCoursesForTieBreak returns a copy of the group's courses in
// descending name order. The back-count convention of the competition
// starts at the course that sorts last alphabetically; the same ordering
// must be used everywhere ranks are computed so the admin dashboard, the
// public board, and the playoff screens cannot disagree.
func SortCoursesForTieBreak(courses []Course) []Course {
	sorted := make([]Course, len(courses))
	copy(sorted, courses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name > sorted[j].Name
	})
	return sorted
}

// Compare is the total-order comparator between two aggregated players in
// the same group. Negative means a ranks above b (stroke play: fewer
// strokes wins). The cascade:
//
//  1. forfeited players sort last
//  2. players with no score sort next-to-last
//  3. total strokes ascending
//  4. per-course totals over courses in descending name order
//  5. hole-by-hole on the first course of that order, hole 9 down to 1
//
// A missing per-course or per-hole value counts as 0, matching the
// store's sparse representation.
func Compare(a, b AggregatedPlayer, coursesForGroup []Course) int {
	if a.HasForfeited != b.HasForfeited {
		if a.HasForfeited {
			return 1
		}
		return -1
	}

	if !a.HasAnyScore && !b.HasAnyScore {
		return 0
	}
	if !a.HasAnyScore {
		return 1
	}
	if !b.HasAnyScore {
		return -1
	}

	if a.TotalScore != b.TotalScore {
		return a.TotalScore - b.TotalScore
	}

	sorted := SortCoursesForTieBreak(coursesForGroup)
	for _, course := range sorted {
		if d := a.CourseScores[course.ID] - b.CourseScores[course.ID]; d != 0 {
			return d
		}
	}

	if len(sorted) > 0 {
		lastCourseID := sorted[0].ID
		aHoles := a.DetailedScores[lastCourseID]
		bHoles := b.DetailedScores[lastCourseID]
		for hole := HolesPerCourse; hole >= 1; hole-- {
			if d := aHoles[hole] - bHoles[hole]; d != 0 {
				return d
			}
		}
	}

	return 0
}
