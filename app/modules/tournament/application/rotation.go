package tournamentservice

import (
	"context"
	"sort"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
)

// CourseAssignments maps group names to their assigned course IDs.
type CourseAssignments struct {
	Assignments map[string][]int `json:"assignments"`
}

// AssignCoursesOperationResult is the envelope for rotation changes.
type AssignCoursesOperationResult = results.OperationResult[CourseAssignments, OperationFailure]

// AssignCourses distributes courses over all groups round-robin and
// persists the result. Existing assignments are replaced wholesale.
func (s *TournamentService) AssignCourses(ctx context.Context, coursesPerGroup int) (AssignCoursesOperationResult, error) {
	return withTelemetry(s, ctx, "AssignCourses", func(ctx context.Context) (AssignCoursesOperationResult, error) {
		if coursesPerGroup < 1 {
			return results.FailureResult[CourseAssignments](OperationFailure{Reason: ErrInvalidPerGroup.Error()}), nil
		}

		courses, err := s.repo.GetCourses(ctx)
		if err != nil {
			return AssignCoursesOperationResult{}, err
		}
		groups, err := s.repo.GetGroups(ctx)
		if err != nil {
			return AssignCoursesOperationResult{}, err
		}

		groupNames := make([]string, 0, len(groups))
		for name := range groups {
			groupNames = append(groupNames, name)
		}
		assignments := tournamentdomain.AssignCoursesRoundRobin(groupNames, courses, coursesPerGroup)

		payload := tournamentevents.CoursesAssignedPayload{
			Assignments: make(map[string][]int, len(assignments)),
		}
		for name, set := range assignments {
			if err := s.repo.UpdateGroupCourses(ctx, name, set); err != nil {
				return AssignCoursesOperationResult{}, err
			}
			ids := make([]int, 0, len(set))
			for id := range set {
				ids = append(ids, id)
			}
			sort.Ints(ids)
			payload.Assignments[name] = ids
		}

		if err := s.publishJSON(ctx, tournamentevents.CoursesAssignedTopic, payload); err != nil {
			return AssignCoursesOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Courses assigned",
			attr.Int("groups", len(assignments)),
			attr.Int("courses_per_group", coursesPerGroup),
			attr.ExtractCorrelationID(ctx),
		)
		return results.SuccessResult[CourseAssignments, OperationFailure](CourseAssignments{
			Assignments: payload.Assignments,
		}), nil
	})
}
