package dto

type CreateEventReq struct {
	Name        string `json:"name"`
	Venue       string `json:"venue"`
	Organizer   string `json:"organizer"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	// Accepted for client compatibility; the catalog forces price to 0.
	Price   int    `json:"price"`
	Profile string `json:"profile"`
	Cover   string `json:"cover"`
	AdminID string `json:"admin_id"`
}

type CreateEventResp struct {
	Msg     string `json:"msg"`
	EventID string `json:"event_id"`
}

type GetEventReq struct {
	EventID string `json:"event_id"`
}

type DeleteEventReq struct {
	EventID string `json:"event_id"`
	AdminID string `json:"admin_id"`
}

type RegisterReq struct {
	EventID       string `json:"event_id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
}

type RegisterResp struct {
	Status string `json:"status"`
	PassID string `json:"pass_id"`
}

type CheckInReq struct {
	EventID     string   `json:"event_id"`
	CheckInList []string `json:"checkInList"`
}

type AckResp struct {
	Msg string `json:"msg"`
}
