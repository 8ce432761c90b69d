package tournamentdomain

import "sort"

// AssignCoursesRoundRobin distributes courses to groups in a fixed
// rotation: groups are taken in name order, courses in ID order, and each
// group receives perGroup consecutive courses starting where the previous
// group stopped, wrapping around. The result plugs directly into
// Group.Courses. Deterministic, so re-running the assignment with the
// same inputs cannot reshuffle an ongoing tournament.
func AssignCoursesRoundRobin(groupNames []string, courses []Course, perGroup int) map[string]map[int]bool {
	assignments := make(map[string]map[int]bool, len(groupNames))
	if len(courses) == 0 || perGroup <= 0 {
		for _, name := range groupNames {
			assignments[name] = map[int]bool{}
		}
		return assignments
	}
	if perGroup > len(courses) {
		perGroup = len(courses)
	}

	names := make([]string, len(groupNames))
	copy(names, groupNames)
	sort.Strings(names)

	ordered := make([]Course, len(courses))
	copy(ordered, courses)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	next := 0
	for _, name := range names {
		assigned := make(map[int]bool, perGroup)
		for k := 0; k < perGroup; k++ {
			assigned[ordered[next%len(ordered)].ID] = true
			next++
		}
		assignments[name] = assigned
	}
	return assignments
}
