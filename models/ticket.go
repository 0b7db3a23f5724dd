package models

// Ticket represents a single seat for a show. Price and buyer may be
// absent until the ticket is sold, which is why those fields are
// pointers at the persistence layer.
type Ticket struct {
	// ID is the unique ticket identifier assigned by the database.
	ID int64 `json:"id"`

	// Show is the name of the show the ticket belongs to.
	Show *string `json:"show"`

	// User is the username of the buyer, nil while unsold.
	User *string `json:"user"`

	// Price is the sale price. Nil until the ticket is priced.
	Price *float64 `json:"price"`

	// Sold reports whether the ticket has been purchased.
	Sold bool `json:"sold"`

	// Details carries the seat assignment for the ticket.
	Details TicketDetails `json:"details"`

	// EventID links the ticket to its parent event, 0 when the ticket
	// was created standalone.
	EventID int64 `json:"event_id,omitempty"`
}

// TicketDetails holds the optional seating attributes of a ticket.
// Both fields are partial-update targets: a nil pointer means
// "leave unchanged".
type TicketDetails struct {
	// Seat is the seat label, e.g. "12A".
	Seat *string `json:"seat"`

	// TicketType distinguishes ticket categories (standard, VIP...).
	TicketType *string `json:"ticket_type"`
}

// TicketUpdate represents a partial update of a ticket. Only non-nil
// fields are written.
type TicketUpdate struct {
	// Show replaces the show name when non-nil.
	Show *string `json:"show,omitempty"`

	// User replaces the buyer when non-nil.
	User *string `json:"user,omitempty"`

	// Price replaces the price when non-nil.
	Price *float64 `json:"price,omitempty"`

	// Sold replaces the sold flag when non-nil.
	Sold *bool `json:"sold,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u TicketUpdate) Empty() bool {
	return u.Show == nil && u.User == nil && u.Price == nil && u.Sold == nil
}

// Event groups the tickets of a single show run. Creating an event may
// pre-seed a batch of tickets in the same transaction.
type Event struct {
	// ID is the unique event identifier assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the event.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Ticket model.
func (t Ticket) TableName() string {
	return "tickets"
}
