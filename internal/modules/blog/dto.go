package blog

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Photo    string `json:"photo"`
	Featured bool   `json:"featured"`
}

type AddCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Text     string `json:"text" binding:"required"`
}
