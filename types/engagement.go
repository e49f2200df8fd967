package types

import (
	"Tube/models"
)

// ToggleResult 存在性开关的结果:added / removed
type ToggleResult struct {
	State string `json:"state"`
}

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

type HistoryListResponse struct {
	Histories []*models.HistoryListRow `json:"histories"`
	Amount    int64                    `json:"amount"`
	Page      int                      `json:"page"`
}

type MyListItem struct {
	Entry *models.MyList `json:"entry"`
	Video *models.Video  `json:"video,omitempty"`
}

type MyListResponse struct {
	Items []*MyListItem `json:"items"`
	Page  int           `json:"page"`
}
