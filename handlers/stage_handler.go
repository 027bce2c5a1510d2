package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/tournament-brackets/services"
)

type StageHandler struct {
	stageService services.StageService
}

func NewStageHandler(ss services.StageService) *StageHandler {
	return &StageHandler{stageService: ss}
}

// ListStages godoc
// @Summary List stages
// @Tags stages
// @Produce json
// @Param event_name query string false "Only stages of this event"
// @Success 200 {object} map[string][]models.Stage
// @Router /stages [get]
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	var eventName *string
	if v := strings.TrimSpace(r.URL.Query().Get("event_name")); v != "" {
		eventName = &v
	}

	stages, err := h.stageService.ListStages(r.Context(), eventName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stages": stages}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStage godoc
// @Summary Get a stage
// @Tags stages
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 200 {object} map[string]models.Stage
// @Failure 404 {object} map[string]string
// @Router /stages/{stageID} [get]
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stage, err := h.stageService.GetStage(r.Context(), stageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stage": stage}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ImportStage godoc
// @Summary Import a bracket document
// @Description Stores a stage with its groups, rounds, matches and participants. Document ids are replaced.
// @Tags stages
// @Accept json
// @Produce json
// @Param stage body services.ImportStageInput true "Bracket document"
// @Success 201 {object} map[string]models.Stage
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /stages [post]
func (h *StageHandler) ImportStage(w http.ResponseWriter, r *http.Request) {
	var input services.ImportStageInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stage, err := h.stageService.ImportStage(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"stage": stage}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteStage godoc
// @Summary Delete a stage with its structure and matches
// @Tags stages
// @Param stageID path int true "Stage ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /stages/{stageID} [delete]
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.stageService.DeleteStage(r.Context(), stageID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStageMatches godoc
// @Summary Matches of one stage
// @Tags stages
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 200 {object} map[string][]models.Match
// @Router /stages/{stageID}/matches [get]
func (h *StageHandler) ListStageMatches(w http.ResponseWriter, r *http.Request) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.stageService.ListStageMatches(r.Context(), stageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetViewerData godoc
// @Summary Everything a bracket viewer needs to render a stage
// @Tags stages
// @Produce json
// @Param stageID path int true "Stage ID"
// @Success 200 {object} models.StageSnapshot
// @Router /viewer-data/{stageID} [get]
func (h *StageHandler) GetViewerData(w http.ResponseWriter, r *http.Request) {
	stageID, err := getIDFromURL(r, "stageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snap, err := h.stageService.GetViewerData(r.Context(), stageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, snap, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
