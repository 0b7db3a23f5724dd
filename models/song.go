package models

// Song is a catalog document describing a single track. Songs live in
// the document-style catalog store, not in the relational database, so
// the ID is a ULID string minted at insertion time.
type Song struct {
	// ID is the catalog identifier of the song (ULID).
	ID string `json:"id,omitempty"`

	// Title is the track title.
	Title string `json:"title"`

	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Genre is a free-form genre label.
	Genre string `json:"genre"`
}

// SongUpdate represents a partial update of a catalog song. Only
// non-nil fields are written.
type SongUpdate struct {
	Title  *string `json:"title,omitempty"`
	Artist *string `json:"artist,omitempty"`
	Genre  *string `json:"genre,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u SongUpdate) Empty() bool {
	return u.Title == nil && u.Artist == nil && u.Genre == nil
}
