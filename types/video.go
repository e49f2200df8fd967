package types

import (
	"Tube/models"
)

// 上传层已完成文件校验与落盘,这里只接收元数据与存储引用
type UploadVideoRequest struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"max=500"`
	MediaURL    string `json:"media_url" binding:"required"`
	MediaData   string `json:"media_data"` // size/mime/duration 的 JSON
	Thumbnail   string `json:"thumbnail"`
}

type UploadMediaResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	MediaData string `json:"media_data"`
}

type EditVideoRequest struct {
	CategoryID  string `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SearchVideoRequest struct {
	Word string `form:"word"`
	Page int    `form:"page"`
}

type VideoItem struct {
	models.Video
	NumComments int64  `json:"num_comments"`
	NumMyLists  int64  `json:"num_mylists"`
	Duration    string `json:"duration,omitempty"` // 从 media_data 提取
}

type FeedResponse struct {
	Latests   []*VideoItem `json:"latests"`
	Histories []*VideoItem `json:"histories,omitempty"`
	Follows   []*VideoItem `json:"follows,omitempty"`
}

type SearchResponse struct {
	Videos []*VideoItem `json:"videos"`
	Amount int64        `json:"amount"`
	Page   int          `json:"page"`
}

type VideoSingleResponse struct {
	Video         *models.Video        `json:"video"`
	NumComments   int64                `json:"num_comments"`
	NumGoods      int64                `json:"num_goods"`
	NumMyLists    int64                `json:"num_mylists"`
	AlreadyGood   bool                 `json:"already_good"`
	AlreadyMyList bool                 `json:"already_mylist"`
	Duration      string               `json:"duration,omitempty"`
	Comments      *CommentListResponse `json:"comments"`
	Relates       []*models.Video      `json:"relates"`
}
