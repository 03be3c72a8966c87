package dto

import "github.com/invite-labs/event-service/internal/domain"

func ToEventResp(e *domain.Event) EventResp {
	participants := make([]ParticipantResp, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, ParticipantResp{
			PassID:        p.PassID,
			Name:          p.Name,
			ContactNumber: p.ContactNumber,
			Entry:         p.Entry,
			RegisteredAt:  p.RegisteredAt,
		})
	}

	return EventResp{
		EventID:      e.ID,
		Name:         e.Name,
		Venue:        e.Venue,
		Organizer:    e.Organizer,
		Date:         e.Date,
		Time:         e.Time,
		Description:  e.Description,
		Price:        e.Price,
		Profile:      e.Profile,
		Cover:        e.Cover,
		Participants: participants,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
