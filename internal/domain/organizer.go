package domain

// Organizer is an institution that hosts events. Email is unique.
type Organizer struct {
	ID      int64  `json:"id,string"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Link    string `json:"link"`
}
