package domain

// Podcast is one published episode. Audio and Image hold hosted media URLs.
type Podcast struct {
	ID          int64  `json:"id,string"`
	Number      int    `json:"number"`
	Theme       string `json:"theme"`
	Title       string `json:"title"`
	Guest       string `json:"guest"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Audio       string `json:"audio"`
	Image       string `json:"image"`
}
