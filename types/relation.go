package types

type ConfigResponse struct {
	Following []string `json:"following"`
	Followers []string `json:"followers"`
	Blocked   []string `json:"blocked"`
}

type ProfileResponse struct {
	UserID      string       `json:"user_id"`
	Videos      []*VideoItem `json:"videos"`
	Following   int          `json:"following"`
	Followers   int          `json:"followers"`
	IsFollowing bool         `json:"is_following"`
	IsBlocked   bool         `json:"is_blocked"`
}

type MyPageResponse struct {
	Videos     []*VideoItem `json:"videos"`
	GoodVideos []*VideoItem `json:"good_videos"`
}
