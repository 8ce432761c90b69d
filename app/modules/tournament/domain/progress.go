package tournamentdomain

import (
	"math"
	"sort"
)

// GroupProgress reports how far one group has advanced: the overall
// percentage of required hole entries, and the course currently in play.
// CurrentCourseID is 0 when the group has no assigned active course.
type GroupProgress struct {
	Group                string
	Percent              int
	CurrentCourseID      int
	CurrentCourseName    string
	CurrentCoursePercent int
}

// EstimateProgress computes per-group progress off the raw snapshot,
// independently of ranking. All divisions are guarded: a group with no
// players or no active courses reports 0, never NaN.
func EstimateProgress(snap *Snapshot) []GroupProgress {
	if snap == nil {
		return nil
	}

	groupNames := make([]string, 0, len(snap.Groups))
	for name := range snap.Groups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	out := make([]GroupProgress, 0, len(groupNames))
	for _, name := range groupNames {
		out = append(out, groupProgress(name, snap))
	}
	return out
}

func groupProgress(name string, snap *Snapshot) GroupProgress {
	prog := GroupProgress{Group: name}
	group := snap.Groups[name]

	var members []Player
	for _, p := range snap.Players {
		if p.Group == name {
			members = append(members, p)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	var activeCourses []Course
	for courseID, assigned := range group.Courses {
		if !assigned {
			continue
		}
		if course, ok := snap.Courses[courseID]; ok && course.IsActive {
			activeCourses = append(activeCourses, course)
		}
	}
	sort.Slice(activeCourses, func(i, j int) bool { return activeCourses[i].ID < activeCourses[j].ID })

	if len(members) == 0 || len(activeCourses) == 0 {
		return prog
	}

	required := len(members) * len(activeCourses) * HolesPerCourse
	entered := 0
	for _, p := range members {
		for _, course := range activeCourses {
			entered += len(snap.Scores[p.ID][course.ID])
		}
	}
	prog.Percent = percent(entered, required)

	// Current course: the first active course that still has holes
	// outstanding; when every course is complete, the last one stays on
	// display at 100%.
	perCourseRequired := len(members) * HolesPerCourse
	current := activeCourses[len(activeCourses)-1]
	for _, course := range activeCourses {
		courseEntered := 0
		for _, p := range members {
			courseEntered += len(snap.Scores[p.ID][course.ID])
		}
		if courseEntered < perCourseRequired {
			current = course
			break
		}
	}
	currentEntered := 0
	for _, p := range members {
		currentEntered += len(snap.Scores[p.ID][current.ID])
	}
	prog.CurrentCourseID = current.ID
	prog.CurrentCourseName = current.Name
	prog.CurrentCoursePercent = percent(currentEntered, perCourseRequired)

	return prog
}

func percent(entered, required int) int {
	if required <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(entered) / float64(required)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
