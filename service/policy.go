package service

import (
	"context"

	"Tube/models"
	"Tube/pkg/response"
)

// PolicyStore 利用规约同意状态,由 dao.PolicyDAO 实现
type PolicyStore interface {
	GetByUser(ctx context.Context, userID string) (*models.UserPolicy, error)
	Accept(ctx context.Context, userID string) error
}

var _ IPolicyService = (*PolicyService)(nil)

type IPolicyService interface {
	Accepted(ctx context.Context, userID string) (bool, error)
	Accept(ctx context.Context, userID string, accept bool) error
}

type PolicyService struct {
	Store PolicyStore
}

func (s *PolicyService) Accepted(ctx context.Context, userID string) (bool, error) {
	policy, err := s.Store.GetByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return policy != nil && policy.Accept, nil
}

// Accept 只接受同意,同意后不可撤回
func (s *PolicyService) Accept(ctx context.Context, userID string, accept bool) error {
	if !accept {
		return response.NewValidation("必须同意利用规约", "accept")
	}
	return s.Store.Accept(ctx, userID)
}
