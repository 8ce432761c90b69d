package tournamentservice

import (
	"context"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
)

// StartSuddenDeathInput opens a playoff for one competition type.
type StartSuddenDeathInput struct {
	Type      tournamentdomain.GroupType
	PlayerIDs []string
	CourseID  int
	Holes     []int
}

// SuddenDeathStatus reports the playoff state after a change.
type SuddenDeathStatus struct {
	Type    tournamentdomain.GroupType            `json:"type"`
	Active  bool                                  `json:"active"`
	Results []tournamentdomain.SuddenDeathResult  `json:"results,omitempty"`
}

// SuddenDeathOperationResult is the envelope for playoff operations.
type SuddenDeathOperationResult = results.OperationResult[SuddenDeathStatus, OperationFailure]

func validGroupType(t tournamentdomain.GroupType) bool {
	return t == tournamentdomain.GroupIndividual || t == tournamentdomain.GroupTeam
}

// StartSuddenDeath opens a playoff, replacing any previous session for
// the same competition type.
func (s *TournamentService) StartSuddenDeath(ctx context.Context, input StartSuddenDeathInput) (SuddenDeathOperationResult, error) {
	return withTelemetry(s, ctx, "StartSuddenDeath", func(ctx context.Context) (SuddenDeathOperationResult, error) {
		if !validGroupType(input.Type) {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrUnknownGroupType.Error()}), nil
		}
		if len(input.Holes) == 0 {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrNoPlayoffHoles.Error()}), nil
		}
		if len(input.PlayerIDs) == 0 {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrNoPlayoffPlayers.Error()}), nil
		}

		players := make(map[string]bool, len(input.PlayerIDs))
		for _, id := range input.PlayerIDs {
			players[id] = true
		}
		session := &tournamentdomain.SuddenDeathSession{
			IsActive: true,
			Players:  players,
			CourseID: input.CourseID,
			Holes:    input.Holes,
			Scores:   make(map[string]map[int]int),
		}
		if err := s.repo.SetSuddenDeath(ctx, input.Type, session); err != nil {
			return SuddenDeathOperationResult{}, err
		}

		if err := s.publishJSON(ctx, tournamentevents.SuddenDeathChangedTopic, tournamentevents.SuddenDeathChangedPayload{
			Type:   input.Type,
			Active: true,
		}); err != nil {
			return SuddenDeathOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Playoff started",
			attr.String("group_type", string(input.Type)),
			attr.Int("players", len(players)),
			attr.Int("holes", len(input.Holes)),
			attr.ExtractCorrelationID(ctx),
		)
		return results.SuccessResult[SuddenDeathStatus, OperationFailure](SuddenDeathStatus{
			Type:   input.Type,
			Active: true,
		}), nil
	})
}

// RecordSuddenDeathScore writes one playoff hole score and returns the
// re-ranked playoff table.
func (s *TournamentService) RecordSuddenDeathScore(ctx context.Context, groupType tournamentdomain.GroupType, playerID string, hole, strokes int) (SuddenDeathOperationResult, error) {
	return withTelemetry(s, ctx, "RecordSuddenDeathScore", func(ctx context.Context) (SuddenDeathOperationResult, error) {
		if !validGroupType(groupType) {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrUnknownGroupType.Error()}), nil
		}
		if strokes < 1 {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrInvalidStrokes.Error()}), nil
		}

		session, err := s.repo.GetSuddenDeath(ctx, groupType)
		if err != nil {
			return SuddenDeathOperationResult{}, err
		}
		if session == nil || !session.IsActive {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrPlayoffNotActive.Error()}), nil
		}
		if !session.Players[playerID] {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrNotInPlayoff.Error()}), nil
		}
		holeListed := false
		for _, h := range session.Holes {
			if h == hole {
				holeListed = true
				break
			}
		}
		if !holeListed {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrHoleNotInPlayoff.Error()}), nil
		}

		if session.Scores == nil {
			session.Scores = make(map[string]map[int]int)
		}
		if session.Scores[playerID] == nil {
			session.Scores[playerID] = make(map[int]int)
		}
		session.Scores[playerID][hole] = strokes

		if err := s.repo.SetSuddenDeath(ctx, groupType, session); err != nil {
			return SuddenDeathOperationResult{}, err
		}

		snap, err := s.repo.LoadSnapshot(ctx)
		if err != nil {
			return SuddenDeathOperationResult{}, err
		}
		ranked := tournamentdomain.RankSuddenDeath(session, snap.Players)

		if err := s.publishJSON(ctx, tournamentevents.SuddenDeathChangedTopic, tournamentevents.SuddenDeathChangedPayload{
			Type:   groupType,
			Active: true,
		}); err != nil {
			return SuddenDeathOperationResult{}, err
		}

		return results.SuccessResult[SuddenDeathStatus, OperationFailure](SuddenDeathStatus{
			Type:    groupType,
			Active:  true,
			Results: ranked,
		}), nil
	})
}

// ResetSuddenDeath clears the playoff for one competition type.
func (s *TournamentService) ResetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType) (SuddenDeathOperationResult, error) {
	return withTelemetry(s, ctx, "ResetSuddenDeath", func(ctx context.Context) (SuddenDeathOperationResult, error) {
		if !validGroupType(groupType) {
			return results.FailureResult[SuddenDeathStatus](OperationFailure{Reason: ErrUnknownGroupType.Error()}), nil
		}

		if err := s.repo.SetSuddenDeath(ctx, groupType, nil); err != nil {
			return SuddenDeathOperationResult{}, err
		}
		if err := s.publishJSON(ctx, tournamentevents.SuddenDeathChangedTopic, tournamentevents.SuddenDeathChangedPayload{
			Type:   groupType,
			Active: false,
		}); err != nil {
			return SuddenDeathOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Playoff reset",
			attr.String("group_type", string(groupType)),
			attr.ExtractCorrelationID(ctx),
		)
		return results.SuccessResult[SuddenDeathStatus, OperationFailure](SuddenDeathStatus{
			Type:   groupType,
			Active: false,
		}), nil
	})
}
