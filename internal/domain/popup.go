package domain

import "time"

const (
	PopupMinFrequencyHours = 1
	PopupMaxFrequencyHours = 168
	PopupMinPriority       = 1
	PopupMaxPriority       = 10
)

// PopupPages are the page tags a popup can target. "all" matches every page.
var PopupPages = []string{"home", "recycle", "facilities", "education", "all"}

type Popup struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title" validate:"required"`
	Content       string    `json:"content" validate:"required"`
	DetailContent string    `json:"detailContent,omitempty"`
	IsActive      bool      `json:"isActive"`
	// Frequency is the minimum number of hours between re-shows of this
	// popup to the same visitor.
	Frequency   int       `json:"frequency"`
	Priority    int       `json:"priority"`
	TargetPages []string  `json:"targetPages"`
	ViewCount   int64     `json:"viewCount"`
	ClickCount  int64     `json:"clickCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidPopupPage(page string) bool {
	for _, p := range PopupPages {
		if p == page {
			return true
		}
	}
	return false
}
