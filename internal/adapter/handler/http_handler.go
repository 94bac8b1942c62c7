package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/core/service"
)

const (
	msgCheckedIn     = "Successfully checked in! Thank you for volunteering."
	msgNotRegistered = "No registration found for this email address"
	msgUnavailable   = "service unavailable, please try again"
	msgNameWarning   = "your name could not be updated"
)

type HTTPHandler struct {
	checkIn    *service.CheckInService
	query      *service.SlotQueryService
	aggregates *service.AggregateMaintainer
	log        *zap.Logger
}

type CheckInHTTPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckInHTTPResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	AlreadyIn bool   `json:"already_checked_in,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

type RegistrationJSON struct {
	ID          string     `json:"id"`
	SlotID      string     `json:"slot_id"`
	VolunteerID string     `json:"volunteer_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	State       string     `json:"state"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
}

type PositionJSON struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	Name                string    `json:"name"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	Capacity            int       `json:"capacity"`
	VolunteersCheckedIn int64     `json:"volunteers_checked_in"`
}

type ReconcileJSON struct {
	PositionID string `json:"position_id"`
	Swept      int    `json:"swept"`
	Previous   int64  `json:"previous"`
	Current    int64  `json:"current"`
}

func NewHTTPHandler(
	checkIn *service.CheckInService,
	query *service.SlotQueryService,
	aggregates *service.AggregateMaintainer,
	log *zap.Logger,
) *HTTPHandler {
	return &HTTPHandler{checkIn: checkIn, query: query, aggregates: aggregates, log: log}
}

// Register mounts the API routes on r.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Post("/slots/{slotID}/check-in", h.CheckIn)
		r.Get("/slots/{slotID}/registrations", h.ListRegistrations)
		r.Get("/positions/{positionID}", h.GetPosition)
		r.Post("/positions/{positionID}/reconcile", h.Reconcile)
	})
}

func (h *HTTPHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req CheckInHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CheckInHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	result, err := h.checkIn.CheckIn(r.Context(), slotID, req.Name, req.Email)
	if err != nil {
		status := http.StatusServiceUnavailable
		message := msgUnavailable

		if errors.Is(err, service.ErrNotRegistered) {
			status = http.StatusNotFound
			message = msgNotRegistered
		}

		writeJSON(w, status, CheckInHTTPResponse{
			Success: false,
			Message: message,
		})
		return
	}

	resp := CheckInHTTPResponse{
		Success:   true,
		Message:   msgCheckedIn,
		AlreadyIn: !result.Transitioned,
	}
	if result.NameErr != nil {
		resp.Warning = msgNameWarning
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")
	state := domain.RegistrationState(r.URL.Query().Get("state"))

	regs, err := h.query.ListRegistrations(r.Context(), slotID, state)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]RegistrationJSON, 0, len(regs))
	for _, reg := range regs {
		out = append(out, RegistrationJSON{
			ID:          reg.ID,
			SlotID:      reg.SlotID,
			VolunteerID: reg.VolunteerID,
			Email:       reg.Email,
			Name:        reg.Name,
			State:       string(reg.State),
			CheckInTime: reg.CheckInTime,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"registrations": out})
}

func (h *HTTPHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	p, err := h.query.GetPosition(r.Context(), chi.URLParam(r, "positionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PositionJSON{
		ID:                  p.ID,
		EventID:             p.EventID,
		Name:                p.Name,
		StartTime:           p.StartTime,
		EndTime:             p.EndTime,
		Capacity:            p.Capacity,
		VolunteersCheckedIn: p.VolunteersCheckedIn,
	})
}

func (h *HTTPHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.aggregates.Reconcile(r.Context(), chi.URLParam(r, "positionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReconcileJSON{
		PositionID: report.PositionID,
		Swept:      report.Swept,
		Previous:   report.Previous,
		Current:    report.Current,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidState):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrPositionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "position not found"})
	default:
		h.log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": msgUnavailable})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
