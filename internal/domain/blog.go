package domain

import "time"

type BlogPost struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title" validate:"required"`
	Content   string        `json:"content" validate:"required"`
	Author    string        `json:"author"`
	Photo     string        `json:"photo,omitempty"`
	Featured  bool          `json:"featured"`
	Comments  []BlogComment `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type BlogComment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
