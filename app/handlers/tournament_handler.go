// Package handlers exposes the tournament service over HTTP. These are
// the admin and scoreboard endpoints; live updates flow over the event
// bus instead.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	tournamentservice "github.com/riverside-pgc/parklive/app/modules/tournament/application"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// TournamentHandler serves the tournament HTTP API.
type TournamentHandler struct {
	service tournamentservice.Service
	logger  *slog.Logger

	// scoreLimiter throttles score writes; captains mash the submit
	// button when the signal is bad on the course.
	scoreLimiter *rate.Limiter
}

// NewTournamentHandler creates a new TournamentHandler.
func NewTournamentHandler(service tournamentservice.Service, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		service:      service,
		logger:       logger,
		scoreLimiter: rate.NewLimiter(rate.Limit(50), 100),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetLeaderboard returns the full recomputed board.
func (h *TournamentHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute leaderboard: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// GetProgress returns per-group completion estimates.
func (h *TournamentHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetProgress(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to estimate progress: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// ExportStandings streams the standings workbook.
func (h *TournamentHandler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ExportStandings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to export standings: %v", err), http.StatusInternalServerError)
		return
	}
	wb := result.Success
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", wb.Filename))
	_, _ = w.Write(wb.Data)
}

// RecordScoreDto is the request body for score writes.
type RecordScoreDto struct {
	MatchID        string `json:"matchId"`
	PlayerID       string `json:"playerId"`
	CourseID       int    `json:"courseId"`
	HoleNumber     int    `json:"holeNumber"`
	Strokes        int    `json:"strokes"`
	ModifiedBy     string `json:"modifiedBy"`
	ModifiedByType string `json:"modifiedByType"`
	Comment        string `json:"comment"`
}

// RecordScore writes one score cell.
func (h *TournamentHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	if !h.scoreLimiter.Allow() {
		http.Error(w, "Too many score writes", http.StatusTooManyRequests)
		return
	}

	var input RecordScoreDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.RecordScore(r.Context(), tournamentservice.RecordScoreInput{
		MatchID:        input.MatchID,
		PlayerID:       input.PlayerID,
		CourseID:       input.CourseID,
		HoleNumber:     input.HoleNumber,
		Strokes:        input.Strokes,
		ModifiedBy:     input.ModifiedBy,
		ModifiedByType: tournamentdomain.ModifierType(input.ModifiedByType),
		Comment:        input.Comment,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to record score: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// GetPlayerAudit returns one player's score history.
func (h *TournamentHandler) GetPlayerAudit(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	result, err := h.service.GetPlayerAudit(r.Context(), playerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load audit trail: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// StartSuddenDeathDto is the request body for opening a playoff.
type StartSuddenDeathDto struct {
	PlayerIDs []string `json:"playerIds"`
	CourseID  int      `json:"courseId"`
	Holes     []int    `json:"holes"`
}

// StartSuddenDeath opens a playoff for the group type in the URL.
func (h *TournamentHandler) StartSuddenDeath(w http.ResponseWriter, r *http.Request) {
	groupType := tournamentdomain.GroupType(chi.URLParam(r, "type"))

	var input StartSuddenDeathDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.StartSuddenDeath(r.Context(), tournamentservice.StartSuddenDeathInput{
		Type:      groupType,
		PlayerIDs: input.PlayerIDs,
		CourseID:  input.CourseID,
		Holes:     input.Holes,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to start playoff: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusCreated, result.Success)
}

// SuddenDeathScoreDto is the request body for playoff score writes.
type SuddenDeathScoreDto struct {
	PlayerID string `json:"playerId"`
	Hole     int    `json:"hole"`
	Strokes  int    `json:"strokes"`
}

// RecordSuddenDeathScore writes one playoff hole score.
func (h *TournamentHandler) RecordSuddenDeathScore(w http.ResponseWriter, r *http.Request) {
	groupType := tournamentdomain.GroupType(chi.URLParam(r, "type"))

	var input SuddenDeathScoreDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.RecordSuddenDeathScore(r.Context(), groupType, input.PlayerID, input.Hole, input.Strokes)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to record playoff score: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// ResetSuddenDeath clears the playoff for the group type in the URL.
func (h *TournamentHandler) ResetSuddenDeath(w http.ResponseWriter, r *http.Request) {
	groupType := tournamentdomain.GroupType(chi.URLParam(r, "type"))

	result, err := h.service.ResetSuddenDeath(r.Context(), groupType)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to reset playoff: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// AssignCoursesDto is the request body for rotation changes.
type AssignCoursesDto struct {
	CoursesPerGroup int `json:"coursesPerGroup"`
}

// AssignCourses redistributes courses over all groups.
func (h *TournamentHandler) AssignCourses(w http.ResponseWriter, r *http.Request) {
	var input AssignCoursesDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.AssignCourses(r.Context(), input.CoursesPerGroup)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to assign courses: %v", err), http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: result.Failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}
