package service

import (
	"context"
	"errors"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
)

var (
	ErrDeviceLimit    = errors.New("maximum device limit reached for your subscription plan")
	ErrDeviceNotFound = errors.New("device not found")
)

type DeviceService interface {
	Register(ctx context.Context, userID int64, deviceType, deviceName string) (*models.Device, error)
	List(ctx context.Context, userID int64) ([]models.Device, error)
	Remove(ctx context.Context, userID, deviceID int64) error
}

type deviceService struct {
	deviceRepo       repository.DeviceRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository, subscriptionRepo repository.SubscriptionRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo, subscriptionRepo: subscriptionRepo}
}

// Register enforces the plan's device limit before inserting. A user with
// no subscription record is not limited at all; that fallback is
// intentional. The check and the insert are separate statements, so a
// concurrent burst from one user can transiently exceed the limit.
func (s *deviceService) Register(ctx context.Context, userID int64, deviceType, deviceName string) (*models.Device, error) {
	subscription, err := s.subscriptionRepo.FindByUser(userID)
	if err == nil {
		count, err := s.deviceRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(subscription.Plan.MaxDevices) {
			return nil, ErrDeviceLimit
		}
	}

	device := &models.Device{
		UserID:     userID,
		DeviceType: deviceType,
		DeviceName: deviceName,
	}
	if err := s.deviceRepo.Create(device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *deviceService) List(ctx context.Context, userID int64) ([]models.Device, error) {
	return s.deviceRepo.ListByUser(userID)
}

func (s *deviceService) Remove(ctx context.Context, userID, deviceID int64) error {
	device, err := s.deviceRepo.FindByID(deviceID)
	if err != nil {
		return ErrDeviceNotFound
	}
	if device.UserID != userID {
		return ErrNotOwner
	}
	return s.deviceRepo.Delete(deviceID)
}
