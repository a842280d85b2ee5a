package service

import (
	"context"
	"errors"
	"time"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
)

var ErrPlanNotFound = errors.New("subscription plan not found")

type SubscriptionService interface {
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id int64) (*models.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	DeletePlan(ctx context.Context, id int64) error

	Subscribe(ctx context.Context, userID, planID int64, start, end time.Time) (*models.UserSubscription, error)
	ListSubscriptions(ctx context.Context, userID int64) ([]models.UserSubscription, error)

	ListBilling(ctx context.Context, userID int64) ([]models.Billing, error)
}

type subscriptionService struct {
	planRepo    repository.PlanRepository
	subRepo     repository.SubscriptionRepository
	billingRepo repository.BillingRepository
}

func NewSubscriptionService(
	planRepo repository.PlanRepository,
	subRepo repository.SubscriptionRepository,
	billingRepo repository.BillingRepository,
) SubscriptionService {
	return &subscriptionService{
		planRepo:    planRepo,
		subRepo:     subRepo,
		billingRepo: billingRepo,
	}
}

func (s *subscriptionService) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return s.planRepo.List()
}

func (s *subscriptionService) GetPlan(ctx context.Context, id int64) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *subscriptionService) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	return s.planRepo.Create(plan)
}

func (s *subscriptionService) UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	if _, err := s.planRepo.FindByID(plan.ID); err != nil {
		return ErrPlanNotFound
	}
	return s.planRepo.Update(plan)
}

func (s *subscriptionService) DeletePlan(ctx context.Context, id int64) error {
	if _, err := s.planRepo.FindByID(id); err != nil {
		return ErrPlanNotFound
	}
	return s.planRepo.Delete(id)
}

// Subscribe links the caller to a plan for the given window. Nothing
// prevents overlapping subscriptions; one-active-per-user is a
// convention, not a constraint.
func (s *subscriptionService) Subscribe(ctx context.Context, userID, planID int64, start, end time.Time) (*models.UserSubscription, error) {
	if _, err := s.planRepo.FindByID(planID); err != nil {
		return nil, ErrPlanNotFound
	}

	sub := &models.UserSubscription{
		UserID:    userID,
		PlanID:    planID,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID int64) ([]models.UserSubscription, error) {
	return s.subRepo.ListByUser(userID)
}

// ListBilling returns charge records owned transitively through the
// caller's subscriptions.
func (s *subscriptionService) ListBilling(ctx context.Context, userID int64) ([]models.Billing, error) {
	return s.billingRepo.ListByUser(userID)
}
