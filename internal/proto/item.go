// Package proto holds the deliberately small prototyping application: an
// items API over a local SQLite file. It exists for quick load and
// deployment experiments and shares only the logging stack with the main
// server.
package proto

// Item is a minimal inventory record.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
