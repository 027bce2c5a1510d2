package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-brackets/services"
)

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: ps}
}

// ListParticipants godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Param tournament_id query int false "Only participants of this tournament"
// @Success 200 {object} map[string][]models.Participant
// @Router /participants [get]
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := optionalIntQuery(r, "tournament_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.participantService.ListParticipants(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetParticipant godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Param participantID path int true "Participant ID"
// @Success 200 {object} map[string]models.Participant
// @Router /participants/{participantID} [get]
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	p, err := h.participantService.GetParticipant(r.Context(), participantID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participant": p}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateParticipant godoc
// @Summary Add a participant to a tournament roster
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body services.CreateParticipantInput true "Participant"
// @Success 201 {object} map[string]models.Participant
// @Security BearerAuth
// @Router /participants [post]
func (h *ParticipantHandler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var input services.CreateParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	p, err := h.participantService.CreateParticipant(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participant": p}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteParticipant godoc
// @Summary Remove a participant
// @Tags participants
// @Param participantID path int true "Participant ID"
// @Success 204
// @Security BearerAuth
// @Router /participants/{participantID} [delete]
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participantService.DeleteParticipant(r.Context(), participantID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
