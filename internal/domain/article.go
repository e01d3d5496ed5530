package domain

import "time"

// ArticleType distinguishes short news posts from long-form articles.
type ArticleType string

const (
	ArticleNews ArticleType = "news"
	ArticleLong ArticleType = "article"
)

// Valid reports whether the type is one of the known values.
func (t ArticleType) Valid() bool {
	return t == ArticleNews || t == ArticleLong
}

// Article is an editorial piece. Image and Tags are optional.
type Article struct {
	ID      int64       `json:"id,string"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Author  string      `json:"author"`
	Date    time.Time   `json:"date"`
	Image   string      `json:"image,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
	Type    ArticleType `json:"type"`
}
