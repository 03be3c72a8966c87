package handlers

import (
	"net/http"

	"github.com/invite-labs/event-service/internal/application/checkin"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/transport/http/dto"
	"github.com/invite-labs/event-service/internal/transport/http/response"
	"github.com/invite-labs/event-service/internal/transport/http/validate"
)

type CheckInHandler struct {
	svc *checkin.Service
}

func NewCheckInHandler(svc *checkin.Service) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

func (h *CheckInHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	if err := h.svc.CheckIn(r.Context(), req.EventID, req.CheckInList); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Data(w, http.StatusOK, dto.AckResp{Msg: "success"})
}
