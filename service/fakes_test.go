package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"Tube/models"

	"gorm.io/gorm"
)

// 内存版存储,按接口逐个实现,给 service 层测试用

type memBlocks struct {
	mu    sync.Mutex
	edges map[string]map[string]bool
}

func newMemBlocks() *memBlocks {
	return &memBlocks{edges: map[string]map[string]bool{}}
}

func (m *memBlocks) IsBlocked(_ context.Context, from, to string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.edges[from][to], nil
}

func (m *memBlocks) Create(_ context.Context, from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edges[from] == nil {
		m.edges[from] = map[string]bool{}
	}
	m.edges[from][to] = true
	return nil
}

func (m *memBlocks) Delete(_ context.Context, from, to string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edges[from][to] {
		delete(m.edges[from], to)
		return 1, nil
	}
	return 0, nil
}

func (m *memBlocks) BlockedIDs(_ context.Context, from string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for to := range m.edges[from] {
		ids = append(ids, to)
	}
	sort.Strings(ids)
	return ids, nil
}

type memFollows struct {
	mu    sync.Mutex
	edges map[string]map[string]bool
}

func newMemFollows() *memFollows {
	return &memFollows{edges: map[string]map[string]bool{}}
}

func (m *memFollows) IsFollowing(_ context.Context, from, to string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.edges[from][to], nil
}

func (m *memFollows) Create(_ context.Context, from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edges[from] == nil {
		m.edges[from] = map[string]bool{}
	}
	m.edges[from][to] = true
	return nil
}

func (m *memFollows) Delete(_ context.Context, from, to string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edges[from][to] {
		delete(m.edges[from], to)
		return 1, nil
	}
	return 0, nil
}

func (m *memFollows) FollowingIDs(_ context.Context, from string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for to := range m.edges[from] {
		ids = append(ids, to)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memFollows) FollowerIDs(_ context.Context, to string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for from, tos := range m.edges {
		if tos[to] {
			ids = append(ids, from)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type memVideos struct {
	mu     sync.Mutex
	videos []*models.Video
}

func newMemVideos() *memVideos { return &memVideos{} }

func (m *memVideos) Create(_ context.Context, v *models.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos = append(m.videos, v)
	return nil
}

func (m *memVideos) GetByID(_ context.Context, id string) (*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (m *memVideos) IncrViews(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.videos {
		if v.ID == id {
			v.Views++
		}
	}
	return nil
}

func (m *memVideos) UpdateMeta(_ context.Context, id string, updates map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.videos {
		if v.ID != id {
			continue
		}
		if t, ok := updates["title"].(string); ok {
			v.Title = t
		}
		if d, ok := updates["description"].(string); ok {
			v.Description = d
		}
		if c, ok := updates["category_id"].(string); ok {
			v.CategoryID = c
		}
		if e, ok := updates["edited"].(bool); ok {
			v.Edited = e
		}
	}
	return nil
}

func (m *memVideos) DeleteCascade(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.videos[:0]
	for _, v := range m.videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	m.videos = kept
	return nil
}

func (m *memVideos) newestFirst() []*models.Video {
	out := make([]*models.Video, len(m.videos))
	copy(out, m.videos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func excludedSet(exclude []string) map[string]bool {
	set := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		set[id] = true
	}
	return set
}

func (m *memVideos) ListLatest(_ context.Context, exclude []string, limit int) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	skip := excludedSet(exclude)
	var out []*models.Video
	for _, v := range m.newestFirst() {
		if skip[v.UserID] {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memVideos) ListByUser(_ context.Context, userID string) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Video
	for _, v := range m.newestFirst() {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVideos) ListByAuthors(_ context.Context, authorIDs []string, limit int) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(authorIDs)
	var out []*models.Video
	for _, v := range m.newestFirst() {
		if !want[v.UserID] {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memVideos) ListByIDs(_ context.Context, ids []string) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(ids)
	var out []*models.Video
	for _, v := range m.newestFirst() {
		if want[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVideos) ListRelated(_ context.Context, categoryID, excludeVideoID string, exclude []string, limit int) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	skip := excludedSet(exclude)
	var out []*models.Video
	for _, v := range m.newestFirst() {
		if v.CategoryID != categoryID || v.ID == excludeVideoID || skip[v.UserID] {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memVideos) matches(v *models.Video, words []string) bool {
	for _, w := range words {
		if !strings.Contains(v.Title, w) && !strings.Contains(v.Description, w) {
			return false
		}
	}
	return true
}

func (m *memVideos) Search(_ context.Context, words, exclude []string, offset, limit int) ([]*models.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	skip := excludedSet(exclude)
	var hits []*models.Video
	for _, v := range m.newestFirst() {
		if skip[v.UserID] || !m.matches(v, words) {
			continue
		}
		hits = append(hits, v)
	}
	if offset >= len(hits) {
		return nil, nil
	}
	hits = hits[offset:]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *memVideos) SearchCount(_ context.Context, words, exclude []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	skip := excludedSet(exclude)
	var count int64
	for _, v := range m.videos {
		if skip[v.UserID] || !m.matches(v, words) {
			continue
		}
		count++
	}
	return count, nil
}

type memThreads struct {
	mu       sync.Mutex
	comments []*models.Comment
	replies  []*models.Reply
	rtrs     []*models.ReplyToReply
}

func newMemThreads() *memThreads { return &memThreads{} }

func (m *memThreads) CreateComment(_ context.Context, c *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, c)
	return nil
}

func (m *memThreads) CreateReply(_ context.Context, r *models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
	return nil
}

func (m *memThreads) CreateReplyToReply(_ context.Context, r *models.ReplyToReply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rtrs = append(m.rtrs, r)
	return nil
}

func (m *memThreads) GetComment(_ context.Context, id string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memThreads) GetReply(_ context.Context, id string) (*models.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.replies {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memThreads) GetReplyToReply(_ context.Context, id string) (*models.ReplyToReply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rtrs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memThreads) UpdateCommentContent(_ context.Context, id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.comments {
		if c.ID == id {
			c.Content = content
		}
	}
	return nil
}

func (m *memThreads) UpdateReplyContent(_ context.Context, id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.replies {
		if r.ID == id {
			r.Content = content
		}
	}
	return nil
}

func (m *memThreads) UpdateReplyToReplyContent(_ context.Context, id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rtrs {
		if r.ID == id {
			r.Content = content
		}
	}
	return nil
}

func (m *memThreads) DeleteCommentTree(_ context.Context, commentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	replyIDs := map[string]bool{}
	keptReplies := m.replies[:0]
	for _, r := range m.replies {
		if r.CommentID == commentID {
			replyIDs[r.ID] = true
			continue
		}
		keptReplies = append(keptReplies, r)
	}
	m.replies = keptReplies

	keptRtrs := m.rtrs[:0]
	for _, r := range m.rtrs {
		if !replyIDs[r.ReplyID] {
			keptRtrs = append(keptRtrs, r)
		}
	}
	m.rtrs = keptRtrs

	kept := m.comments[:0]
	for _, c := range m.comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	m.comments = kept
	return nil
}

func (m *memThreads) DeleteReplyTree(_ context.Context, replyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	keptRtrs := m.rtrs[:0]
	for _, r := range m.rtrs {
		if r.ReplyID != replyID {
			keptRtrs = append(keptRtrs, r)
		}
	}
	m.rtrs = keptRtrs

	kept := m.replies[:0]
	for _, r := range m.replies {
		if r.ID != replyID {
			kept = append(kept, r)
		}
	}
	m.replies = kept
	return nil
}

func (m *memThreads) DeleteReplyToReply(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rtrs[:0]
	for _, r := range m.rtrs {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.rtrs = kept
	return nil
}

func (m *memThreads) ListComments(_ context.Context, videoID string, offset, limit int) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hits []*models.Comment
	for i := len(m.comments) - 1; i >= 0; i-- {
		if m.comments[i].VideoID == videoID {
			hits = append(hits, m.comments[i])
		}
	}
	if offset >= len(hits) {
		return nil, nil
	}
	hits = hits[offset:]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *memThreads) CountComments(_ context.Context, videoID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, c := range m.comments {
		if c.VideoID == videoID {
			count++
		}
	}
	return count, nil
}

func (m *memThreads) ListReplies(_ context.Context, commentID string, offset, limit int) ([]*models.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hits []*models.Reply
	for i := len(m.replies) - 1; i >= 0; i-- {
		if m.replies[i].CommentID == commentID {
			hits = append(hits, m.replies[i])
		}
	}
	if offset >= len(hits) {
		return nil, nil
	}
	hits = hits[offset:]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *memThreads) CountReplies(_ context.Context, commentID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, r := range m.replies {
		if r.CommentID == commentID {
			count++
		}
	}
	return count, nil
}

func (m *memThreads) ListReplyToReplies(_ context.Context, replyID string, offset, limit int) ([]*models.ReplyToReply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hits []*models.ReplyToReply
	for i := len(m.rtrs) - 1; i >= 0; i-- {
		if m.rtrs[i].ReplyID == replyID {
			hits = append(hits, m.rtrs[i])
		}
	}
	if offset >= len(hits) {
		return nil, nil
	}
	hits = hits[offset:]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *memThreads) CountReplyToReplies(_ context.Context, replyID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, r := range m.rtrs {
		if r.ReplyID == replyID {
			count++
		}
	}
	return count, nil
}

func (m *memThreads) BatchCountReplies(_ context.Context, commentIDs []string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(commentIDs)
	counts := map[string]int64{}
	for _, r := range m.replies {
		if want[r.CommentID] {
			counts[r.CommentID]++
		}
	}
	return counts, nil
}

func (m *memThreads) BatchCountComments(_ context.Context, videoIDs []string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(videoIDs)
	counts := map[string]int64{}
	for _, c := range m.comments {
		if want[c.VideoID] {
			counts[c.VideoID]++
		}
	}
	return counts, nil
}

type memHistories struct {
	mu     sync.Mutex
	rows   []*models.History
	videos *memVideos
}

func newMemHistories(videos *memVideos) *memHistories {
	return &memHistories{videos: videos}
}

func (m *memHistories) Upsert(_ context.Context, userID, videoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.rows {
		if h.UserID == userID && h.VideoID == videoID {
			h.Views++
			h.ViewedAt = time.Now()
			return nil
		}
	}
	m.rows = append(m.rows, &models.History{
		ID:       userID + ":" + videoID,
		UserID:   userID,
		VideoID:  videoID,
		Views:    1,
		ViewedAt: time.Now(),
	})
	return nil
}

func (m *memHistories) visibleRows(userID string, exclude []string) []*models.HistoryListRow {
	skip := excludedSet(exclude)
	var out []*models.HistoryListRow
	for i := len(m.rows) - 1; i >= 0; i-- {
		h := m.rows[i]
		if h.UserID != userID {
			continue
		}
		video, _ := m.videos.GetByID(context.Background(), h.VideoID)
		if video == nil || skip[video.UserID] {
			continue
		}
		out = append(out, &models.HistoryListRow{
			History:   *h,
			Title:     video.Title,
			Thumbnail: video.Thumbnail,
			AuthorID:  video.UserID,
		})
	}
	return out
}

func (m *memHistories) ListForUser(_ context.Context, userID string, exclude []string, offset, limit int) ([]*models.HistoryListRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.visibleRows(userID, exclude)
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memHistories) CountForUser(_ context.Context, userID string, exclude []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.visibleRows(userID, exclude))), nil
}

func (m *memHistories) RecentVideoIDs(_ context.Context, userID string, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].UserID == userID {
			ids = append(ids, m.rows[i].VideoID)
			if len(ids) == limit {
				break
			}
		}
	}
	return ids, nil
}

func (m *memHistories) row(userID, videoID string) *models.History {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.rows {
		if h.UserID == userID && h.VideoID == videoID {
			return h
		}
	}
	return nil
}

type memMyLists struct {
	mu      sync.Mutex
	entries []*models.MyList
}

func newMemMyLists() *memMyLists { return &memMyLists{} }

func (m *memMyLists) GetByUserVideo(_ context.Context, userID, videoID string) (*models.MyList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == userID && e.VideoID == videoID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memMyLists) Create(_ context.Context, entry *models.MyList) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == entry.UserID && e.VideoID == entry.VideoID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memMyLists) DeleteByUserVideo(_ context.Context, userID, videoID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.entries[:0]
	var removed int64
	for _, e := range m.entries {
		if e.UserID == userID && e.VideoID == videoID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed, nil
}

func (m *memMyLists) ListForUser(_ context.Context, userID string, offset, limit int) ([]*models.MyList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.MyList
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memMyLists) CountForVideo(_ context.Context, videoID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, e := range m.entries {
		if e.VideoID == videoID {
			count++
		}
	}
	return count, nil
}

func (m *memMyLists) BatchCountForVideos(_ context.Context, videoIDs []string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(videoIDs)
	counts := map[string]int64{}
	for _, e := range m.entries {
		if want[e.VideoID] {
			counts[e.VideoID]++
		}
	}
	return counts, nil
}

func (m *memMyLists) countAll(userID, videoID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.UserID == userID && e.VideoID == videoID {
			n++
		}
	}
	return n
}

type memGoods struct {
	mu      sync.Mutex
	entries []*models.GoodVideo
}

func newMemGoods() *memGoods { return &memGoods{} }

func (m *memGoods) GetByUserVideo(_ context.Context, userID, videoID string) (*models.GoodVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == userID && e.VideoID == videoID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memGoods) Create(_ context.Context, entry *models.GoodVideo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == entry.UserID && e.VideoID == entry.VideoID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memGoods) DeleteByUserVideo(_ context.Context, userID, videoID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.entries[:0]
	var removed int64
	for _, e := range m.entries {
		if e.UserID == userID && e.VideoID == videoID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed, nil
}

func (m *memGoods) CountForVideo(_ context.Context, videoID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, e := range m.entries {
		if e.VideoID == videoID {
			count++
		}
	}
	return count, nil
}

func (m *memGoods) RatedVideoIDs(_ context.Context, userID string, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			ids = append(ids, m.entries[i].VideoID)
			if len(ids) == limit {
				break
			}
		}
	}
	return ids, nil
}

type memNotifies struct {
	mu         sync.Mutex
	notifies   []*models.Notify
	targets    []*models.NotifyTarget
	categories map[string]*models.NotifyCategory
}

func newMemNotifies() *memNotifies {
	return &memNotifies{categories: map[string]*models.NotifyCategory{}}
}

func (m *memNotifies) CreateWithTargets(_ context.Context, notify *models.Notify, userIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for _, n := range m.notifies {
		if n.ID == notify.ID {
			found = true
			break
		}
	}
	if !found {
		m.notifies = append(m.notifies, notify)
	}

	now := time.Now()
	for _, userID := range userIDs {
		dup := false
		for _, t := range m.targets {
			if t.NotifyID == notify.ID && t.UserID == userID {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		m.targets = append(m.targets, &models.NotifyTarget{
			ID:          notify.ID + ":" + userID,
			NotifyID:    notify.ID,
			UserID:      userID,
			Read:        false,
			DeliveredAt: now,
		})
	}
	return nil
}

func (m *memNotifies) GetCategory(_ context.Context, id string) (*models.NotifyCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.categories[id], nil
}

func (m *memNotifies) GetTarget(_ context.Context, notifyID, userID string) (*models.NotifyTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.targets {
		if t.NotifyID == notifyID && t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memNotifies) SetTargetRead(_ context.Context, targetID string, read bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.targets {
		if t.ID == targetID {
			t.Read = read
		}
	}
	return nil
}

func (m *memNotifies) BulkSetRead(_ context.Context, notifyIDs []string, read bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(notifyIDs)
	var affected int64
	for _, t := range m.targets {
		if want[t.NotifyID] {
			t.Read = read
			affected++
		}
	}
	return affected, nil
}

func (m *memNotifies) TargetUserIDs(_ context.Context, notifyIDs []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := excludedSet(notifyIDs)
	seen := map[string]bool{}
	var ids []string
	for _, t := range m.targets {
		if want[t.NotifyID] && !seen[t.UserID] {
			seen[t.UserID] = true
			ids = append(ids, t.UserID)
		}
	}
	return ids, nil
}

func (m *memNotifies) ListForUser(_ context.Context, userID string, offset, limit int) ([]*models.NotifyFeedRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*models.NotifyFeedRow
	for i := len(m.targets) - 1; i >= 0; i-- {
		t := m.targets[i]
		if t.UserID != userID {
			continue
		}
		var title, content string
		for _, n := range m.notifies {
			if n.ID == t.NotifyID {
				title, content = n.Title, n.Content
				break
			}
		}
		rows = append(rows, &models.NotifyFeedRow{
			TargetID:    t.ID,
			NotifyID:    t.NotifyID,
			Title:       title,
			Content:     content,
			Read:        t.Read,
			DeliveredAt: t.DeliveredAt,
		})
	}
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memNotifies) CountForUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, t := range m.targets {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *memNotifies) CountUnread(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, t := range m.targets {
		if t.UserID == userID && !t.Read {
			count++
		}
	}
	return count, nil
}

type memUnread struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMemUnread() *memUnread {
	return &memUnread{counts: map[string]int64{}}
}

func (m *memUnread) Incr(_ context.Context, userID string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.counts[userID]; ok {
		m.counts[userID] += delta
	}
}

func (m *memUnread) Get(_ context.Context, userID string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.counts[userID]; ok {
		return v
	}
	return -1
}

func (m *memUnread) Set(_ context.Context, userID string, count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[userID] = count
}

func (m *memUnread) Del(_ context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counts, userID)
}

// alwaysLocker 永远拿得到锁
type alwaysLocker struct{}

func (alwaysLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (alwaysLocker) Release(context.Context, string)                              {}

// heldLocker 模拟锁被占用
type heldLocker struct{}

func (heldLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return false, nil }
func (heldLocker) Release(context.Context, string)                              {}

type memCategories struct {
	mu         sync.Mutex
	categories []*models.VideoCategory
	videos     *memVideos
}

func newMemCategories(videos *memVideos) *memCategories {
	return &memCategories{videos: videos}
}

func (m *memCategories) Create(_ context.Context, c *models.VideoCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, c)
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*models.VideoCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) List(_ context.Context) ([]*models.VideoCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.VideoCategory, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *memCategories) CountVideos(_ context.Context, categoryID string) (int64, error) {
	m.videos.mu.Lock()
	defer m.videos.mu.Unlock()
	var count int64
	for _, v := range m.videos.videos {
		if v.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.categories[:0]
	for _, c := range m.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.categories = kept
	return nil
}
