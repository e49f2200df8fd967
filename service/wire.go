package service

import (
	"Tube/dao"
	"Tube/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(VideoService), "*"),
	wire.Bind(new(IVideoService), new(*VideoService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(NotifyService), "*"),
	wire.Bind(new(INotifyService), new(*NotifyService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Struct(new(RelationService), "*"),
	wire.Bind(new(IRelationService), new(*RelationService)),

	wire.Struct(new(UserPageService), "*"),
	wire.Bind(new(IUserPageService), new(*UserPageService)),

	wire.Struct(new(ReportService), "*"),
	wire.Bind(new(IReportService), new(*ReportService)),

	wire.Struct(new(PolicyService), "*"),
	wire.Bind(new(IPolicyService), new(*PolicyService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	NewMediaService,

	NewVisibilityService,
	wire.Bind(new(IVisibilityService), new(*VisibilityService)),

	NewRedisLocker,
	wire.Bind(new(Locker), new(*RedisLocker)),

	wire.Bind(new(VideoStore), new(*dao.Video)),
	wire.Bind(new(VideoReader), new(*dao.Video)),
	wire.Bind(new(EngagementVideoStore), new(*dao.Video)),
	wire.Bind(new(ThreadStore), new(*dao.Comment)),
	wire.Bind(new(CommentCounter), new(*dao.Comment)),
	wire.Bind(new(HistoryStore), new(*dao.HistoryDAO)),
	wire.Bind(new(RecentHistoryReader), new(*dao.HistoryDAO)),
	wire.Bind(new(MyListStore), new(*dao.MyListDAO)),
	wire.Bind(new(MyListCounter), new(*dao.MyListDAO)),
	wire.Bind(new(GoodStore), new(*dao.GoodDAO)),
	wire.Bind(new(GoodCounter), new(*dao.GoodDAO)),
	wire.Bind(new(RatedVideoReader), new(*dao.GoodDAO)),
	wire.Bind(new(FollowStore), new(*dao.FollowDAO)),
	wire.Bind(new(FollowReader), new(*dao.FollowDAO)),
	wire.Bind(new(BlockStore), new(*dao.BlockDAO)),
	wire.Bind(new(BlockEdgeStore), new(*dao.BlockDAO)),
	wire.Bind(new(NotifyStore), new(*dao.NotifyDAO)),
	wire.Bind(new(UnreadCache), new(*cache.UnreadStorage)),
	wire.Bind(new(ReportStore), new(*dao.ReportDAO)),
	wire.Bind(new(PolicyStore), new(*dao.PolicyDAO)),
	wire.Bind(new(CategoryStore), new(*dao.Category)),
	wire.Bind(new(CategoryReader), new(*dao.Category)),
)
