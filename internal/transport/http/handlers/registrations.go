package handlers

import (
	"net/http"

	"github.com/invite-labs/event-service/internal/application/registration"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/transport/http/dto"
	"github.com/invite-labs/event-service/internal/transport/http/response"
	"github.com/invite-labs/event-service/internal/transport/http/validate"
)

type RegistrationsHandler struct {
	svc *registration.Service
}

func NewRegistrationsHandler(svc *registration.Service) *RegistrationsHandler {
	return &RegistrationsHandler{svc: svc}
}

func (h *RegistrationsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	p, err := h.svc.Register(r.Context(), req.EventID, req.Name, req.ContactNumber)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, dto.RegisterResp{Status: "success", PassID: p.PassID})
}
