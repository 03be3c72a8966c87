package handlers

import (
	"net/http"

	"github.com/invite-labs/event-service/internal/application/catalog"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/transport/http/dto"
	"github.com/invite-labs/event-service/internal/transport/http/response"
	"github.com/invite-labs/event-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *catalog.Service
}

func NewEventsHandler(svc *catalog.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	e, err := h.svc.Create(r.Context(), catalog.CreateCmd{
		AdminID:     req.AdminID,
		Name:        req.Name,
		Venue:       req.Venue,
		Organizer:   req.Organizer,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Profile:     req.Profile,
		Cover:       req.Cover,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, dto.CreateEventResp{Msg: "event created", EventID: e.ID})
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}

	out := make([]dto.EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventResp(e))
	}
	response.Data(w, http.StatusOK, out)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req dto.GetEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	e, err := h.svc.Get(r.Context(), req.EventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, dto.ToEventResp(e))
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	if err := h.svc.Delete(r.Context(), req.EventID, req.AdminID); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, dto.AckResp{Msg: "success"})
}
