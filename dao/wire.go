//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCategory,
	NewVideo,
	NewComment,
	NewHistoryDAO,
	NewMyListDAO,
	NewGoodDAO,
	NewFollowDAO,
	NewBlockDAO,
	NewNotifyDAO,
	NewReportDAO,
	NewPolicyDAO,
)
