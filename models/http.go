package models

// UserCreateBody is the JSON payload of the registration endpoint.
type UserCreateBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MFAVerifyBody is the JSON payload of the TOTP verification endpoint.
type MFAVerifyBody struct {
	// Username identifies the account whose second factor is checked.
	Username string `json:"username"`

	// Code is the 6-digit one-time code from the authenticator app.
	Code string `json:"code"`
}

// EventCreateBody is the JSON payload for creating an event together
// with an optional batch of pre-seeded tickets.
type EventCreateBody struct {
	Name      string `json:"name"`
	NbTickets int    `json:"nb_tickets"`
}

// TicketCreateBody is the JSON payload for creating a standalone ticket.
type TicketCreateBody struct {
	Show  string  `json:"show"`
	User  string  `json:"user"`
	Price float64 `json:"price"`
}
