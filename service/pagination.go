package service

// 各列表的默认分页大小,评论/通知/历史固定每页 10 条
const (
	CommentsPerPage = 10
	NotifyPerPage   = 10
	HistoryPerPage  = 10
	SearchPerPage   = 10
	FeedAmount      = 20
)

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageOffset(page, size int) int {
	return (normalizePage(page) - 1) * size
}
