package types

type FileReportRequest struct {
	ReportedID string `json:"reported_id" binding:"required"`
	Reason     string `json:"reason" binding:"required,min=1,max=200"`
	CategoryID string `json:"category_id"`
	Target     string `json:"target" binding:"max=500"` // 被通报内容的自由描述
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=10"`
}

// Accept 不带 required:false 也要进到服务层,由服务层返回校验错误
type AcceptPolicyRequest struct {
	Accept bool `json:"accept"`
}
