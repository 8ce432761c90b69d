package tournamentdomain

import "testing"

var tieBreakCourses = []Course{
	{ID: 1, Name: "East"},
	{ID: 2, Name: "West"},
	{ID: 3, Name: "South"},
}

func scored(id string, total int, courseScores map[int]int, detailed map[int]map[int]int) AggregatedPlayer {
	return AggregatedPlayer{
		ID:             id,
		TotalScore:     total,
		HasAnyScore:    true,
		CourseScores:   courseScores,
		DetailedScores: detailed,
	}
}

func TestCompareCascade(t *testing.T) {
	tests := []struct {
		name string
		a, b AggregatedPlayer
		want int // sign only
	}{
		{
			name: "forfeited sorts after non-forfeited",
			a:    AggregatedPlayer{ID: "a", HasAnyScore: true, HasForfeited: true, TotalScore: 1},
			b:    scored("b", 99, nil, nil),
			want: 1,
		},
		{
			name: "both forfeited is a tie at this stage",
			a:    AggregatedPlayer{ID: "a", HasForfeited: true},
			b:    AggregatedPlayer{ID: "b", HasForfeited: true},
			want: 0,
		},
		{
			name: "no score sorts after any score",
			a:    AggregatedPlayer{ID: "a"},
			b:    scored("b", 50, nil, nil),
			want: 1,
		},
		{
			name: "lower total wins",
			a:    scored("a", 60, nil, nil),
			b:    scored("b", 61, nil, nil),
			want: -1,
		},
		{
			name: "equal totals fall through to descending-name course totals",
			// West sorts first in descending name order; a was better there.
			a:    scored("a", 60, map[int]int{1: 31, 2: 29, 3: 0}, nil),
			b:    scored("b", 60, map[int]int{1: 30, 2: 30, 3: 0}, nil),
			want: -1,
		},
		{
			name: "equal course totals fall through to back-nine countback on West",
			a: scored("a", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 3, 8: 4}}),
			b: scored("b", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 4, 8: 3}}),
			want: -1,
		},
		{
			name: "countback walks down from hole 9",
			a: scored("a", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 4, 8: 4, 7: 3}}),
			b: scored("b", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 4, 8: 4, 7: 4}}),
			want: -1,
		},
		{
			name: "fully tied",
			a: scored("a", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 4}}),
			b: scored("b", 60, map[int]int{1: 30, 2: 30},
				map[int]map[int]int{2: {9: 4}}),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b, tieBreakCourses)
			if sign(got) != tt.want {
				t.Errorf("Compare() = %d, want sign %d", got, tt.want)
			}
			// Antisymmetry.
			if sign(Compare(tt.b, tt.a, tieBreakCourses)) != -tt.want {
				t.Errorf("Compare() is not antisymmetric for %s", tt.name)
			}
		})
	}
}

func TestSortCoursesForTieBreak(t *testing.T) {
	sorted := SortCoursesForTieBreak(tieBreakCourses)
	wantOrder := []string{"West", "South", "East"}
	for i, name := range wantOrder {
		if sorted[i].Name != name {
			t.Fatalf("position %d = %q, want %q", i, sorted[i].Name, name)
		}
	}
	// Input must not be mutated.
	if tieBreakCourses[0].Name != "East" {
		t.Error("SortCoursesForTieBreak mutated its input")
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
