package uid

import "github.com/google/uuid"

// 主键统一使用不可预测的 UUID,避免顺序 ID 被遍历
func NewID() string {
	return uuid.NewString()
}

// IsValid 判断是否为合法的实体 ID
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
