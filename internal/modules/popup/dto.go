package popup

type CreatePopupRequest struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	DetailContent string   `json:"detailContent"`
	IsActive      *bool    `json:"isActive"`
	Frequency     int      `json:"frequency"`
	Priority      int      `json:"priority"`
	TargetPages   []string `json:"targetPages"`
}

type UpdatePopupRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	DetailContent *string  `json:"detailContent"`
	IsActive      *bool    `json:"isActive"`
	Frequency     *int     `json:"frequency"`
	Priority      *int     `json:"priority"`
	TargetPages   []string `json:"targetPages"`
}
