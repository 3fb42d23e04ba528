package pledge

type CreatePledgeRequest struct {
	Name      string `json:"name" binding:"required"`
	ItemCount int    `json:"itemCount" binding:"required,min=1"`
}
