package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/services"
	"github.com/go-chi/chi/v5"
)

type StandingsHandler struct {
	standingsService services.StandingsService
	exportService    services.ExportService
	eventService     services.EventService
}

func NewStandingsHandler(ss services.StandingsService, es services.ExportService, evs services.EventService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: ss,
		exportService:    es,
		eventService:     evs,
	}
}

// GetStandings godoc
// @Summary Final standings of a stage
// @Tags standings
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 200 {array} models.PlacementRecord
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /standings/{stageID} [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, ok := h.loadStandings(w, r)
	if !ok {
		return
	}

	placements := standings.Placements
	if placements == nil {
		placements = []models.PlacementRecord{}
	}
	if err := writeJSON(w, http.StatusOK, placements, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandingsStats godoc
// @Summary Standings with ranker and skipped-match statistics
// @Tags standings
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 200 {object} services.StageStandings
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /standings/{stageID}/stats [get]
func (h *StandingsHandler) GetStandingsStats(w http.ResponseWriter, r *http.Request) {
	standings, ok := h.loadStandings(w, r)
	if !ok {
		return
	}

	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) loadStandings(w http.ResponseWriter, r *http.Request) (*services.StageStandings, bool) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return nil, false
	}

	standings, err := h.standingsService.GetStandings(r.Context(), stageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return nil, false
	}
	return standings, true
}

// ExportStandings godoc
// @Summary Export standings to an xlsx workbook
// @Tags standings
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 201 {object} services.ExportResult
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /standings/{stageID}/export [post]
func (h *StandingsHandler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.exportService.ExportStandings(r.Context(), stageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := make(http.Header)
	if res.URL != "" {
		headers.Set("Location", res.URL)
	}
	if err := writeJSON(w, http.StatusCreated, res, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetEventRankings godoc
// @Summary Points table across all stages of an event
// @Tags standings
// @Produce json
// @Param eventName path string true "Event name"
// @Success 200 {object} map[string][]models.EventRanking
// @Failure 404 {object} map[string]string
// @Router /events/{eventName}/rankings [get]
func (h *StandingsHandler) GetEventRankings(w http.ResponseWriter, r *http.Request) {
	eventName := strings.TrimSpace(chi.URLParam(r, "eventName"))
	if eventName == "" {
		badRequestResponse(w, r, errors.New("missing eventName in URL path"))
		return
	}

	rankings, err := h.eventService.GetRankings(r.Context(), eventName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": eventName, "rankings": rankings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
