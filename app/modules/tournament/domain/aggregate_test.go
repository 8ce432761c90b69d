package tournamentdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Players: map[string]Player{
			"p1": {ID: "p1", Type: PlayerIndividual, Group: "A", Jo: 1, Name: "Kim", Affiliation: "Riverside"},
			"p2": {ID: "p2", Type: PlayerTeam, Group: "A", Jo: 2, P1Name: "Lee", P1Affiliation: "Hillcrest", P2Name: "Park", P2Affiliation: "Lakeside"},
		},
		Groups: map[string]Group{
			"A": {Name: "A", Type: GroupIndividual, Courses: map[int]bool{1: true, 2: true, 3: false}},
		},
		Courses: map[int]Course{
			1: {ID: 1, Name: "East", Pars: parsOf(3, 4, 3, 4, 5, 3, 4, 3, 4), IsActive: true},
			2: {ID: 2, Name: "West", Pars: parsOf(3, 4, 3, 4, 5, 3, 4, 3, 4), IsActive: false},
			3: {ID: 3, Name: "North", Pars: parsOf(3, 4, 3, 4, 5, 3, 4, 3, 4), IsActive: true},
		},
		Scores: ScoreSet{
			"p1": {
				1: {1: 3, 2: 4, 3: 3},
				2: {1: 4},
			},
		},
	}
}

func TestAggregatePlayerTotalsUseAllAssignedCourses(t *testing.T) {
	snap := testSnapshot()
	agg := AggregatePlayer(snap.Players["p1"], snap)

	// Course 2 is hidden from the board but assigned, so its strokes
	// count toward the total.
	if agg.TotalScore != 14 {
		t.Errorf("TotalScore = %d, want 14", agg.TotalScore)
	}
	if !agg.HasAnyScore {
		t.Error("HasAnyScore = false, want true")
	}
	if agg.HasForfeited {
		t.Error("HasForfeited = true, want false")
	}
	wantCourseScores := map[int]int{1: 10, 2: 4}
	if diff := cmp.Diff(wantCourseScores, agg.CourseScores); diff != "" {
		t.Errorf("CourseScores mismatch (-want +got):\n%s", diff)
	}

	assignedIDs := make([]int, 0, len(agg.AssignedCourses))
	for _, c := range agg.AssignedCourses {
		assignedIDs = append(assignedIDs, c.ID)
	}
	if diff := cmp.Diff([]int{1, 2}, assignedIDs); diff != "" {
		t.Errorf("AssignedCourses mismatch (-want +got):\n%s", diff)
	}

	visibleIDs := make([]int, 0, len(agg.VisibleCourses))
	for _, c := range agg.VisibleCourses {
		visibleIDs = append(visibleIDs, c.ID)
	}
	if diff := cmp.Diff([]int{1}, visibleIDs); diff != "" {
		t.Errorf("VisibleCourses mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregatePlayerVisibilityDoesNotChangeTotals(t *testing.T) {
	snap := testSnapshot()
	before := AggregatePlayer(snap.Players["p1"], snap)

	hidden := snap.Courses[1]
	hidden.IsActive = false
	snap.Courses[1] = hidden

	after := AggregatePlayer(snap.Players["p1"], snap)
	if before.TotalScore != after.TotalScore {
		t.Errorf("TotalScore changed with visibility: %d -> %d", before.TotalScore, after.TotalScore)
	}
	if diff := cmp.Diff(before.CourseScores, after.CourseScores); diff != "" {
		t.Errorf("CourseScores changed with visibility (-before +after):\n%s", diff)
	}
}

func TestAggregatePlayerForfeitSentinel(t *testing.T) {
	snap := testSnapshot()
	snap.Scores["p1"] = map[int]map[int]int{
		1: {1: 3, 2: 4, 3: 0, 4: 4, 5: 5, 6: 3, 7: 4, 8: 3, 9: 4},
	}
	agg := AggregatePlayer(snap.Players["p1"], snap)

	if !agg.HasForfeited {
		t.Error("HasForfeited = false, want true on a 0-valued hole")
	}
	// Entered non-zero strokes still sum for informational display.
	if agg.TotalScore != 30 {
		t.Errorf("TotalScore = %d, want 30", agg.TotalScore)
	}
}

func TestAggregatePlayerCoercesInvalidScores(t *testing.T) {
	snap := testSnapshot()
	snap.Scores["p1"] = map[int]map[int]int{
		1: {1: -3, 2: 4},
	}
	agg := AggregatePlayer(snap.Players["p1"], snap)
	if agg.TotalScore != 4 {
		t.Errorf("TotalScore = %d, want 4 (negative values treated as not played)", agg.TotalScore)
	}
	if agg.HasForfeited {
		t.Error("HasForfeited = true, want false (negative is not the forfeit sentinel)")
	}
}

func TestAggregatePlayerUnknownGroup(t *testing.T) {
	snap := testSnapshot()
	p := snap.Players["p1"]
	p.Group = "missing"
	agg := AggregatePlayer(p, snap)

	if agg.TotalScore != 0 || agg.HasAnyScore || len(agg.AssignedCourses) != 0 {
		t.Errorf("player with unknown group should aggregate to zero, got %+v", agg)
	}
}

func TestAggregatePlayerTeamDisplay(t *testing.T) {
	snap := testSnapshot()
	agg := AggregatePlayer(snap.Players["p2"], snap)
	if agg.DisplayName != "Lee / Park" {
		t.Errorf("DisplayName = %q, want %q", agg.DisplayName, "Lee / Park")
	}
	if agg.Club != "Hillcrest" {
		t.Errorf("Club = %q, want %q", agg.Club, "Hillcrest")
	}
}
