package domain

import "time"

// Theme categorizes events.
type Theme string

const (
	ThemeEvents         Theme = "events"
	ThemeCertifications Theme = "certifications"
	ThemeWorkshops      Theme = "workshops"
	ThemeCompetitions   Theme = "competitions"
	ThemeCamps          Theme = "camps"
)

// Valid reports whether the theme is one of the known values.
func (t Theme) Valid() bool {
	switch t {
	case ThemeEvents, ThemeCertifications, ThemeWorkshops, ThemeCompetitions, ThemeCamps:
		return true
	}
	return false
}

// Event is a coaching event listing. Image and Icon hold hosted media URLs.
type Event struct {
	ID           int64     `json:"id,string"`
	Theme        Theme     `json:"theme"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	Organizer    string    `json:"organizer"`
	Date         time.Time `json:"date"`
	Requirements string    `json:"requirements"`
	Building     string    `json:"building"`
	Address      string    `json:"address"`
	NpaCity      string    `json:"npaCity"`
	Website      string    `json:"website"`
	Image        string    `json:"image"`
	Icon         string    `json:"icon"`
}
