package entity

// Anchor is a printed QR marker at a known position, scanned by the client to
// relocalize itself in the navigation frame.
type Anchor struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position Point  `json:"position"`
}
