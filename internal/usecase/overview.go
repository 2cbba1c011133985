package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/domain/repository"
)

// OverviewUseCase serves the dashboard widgets and side panels.
type OverviewUseCase struct {
	dashboards    repository.DashboardRepository
	notifications repository.NotificationRepository
	activities    repository.ActivityRepository
	users         repository.UserRepository
}

// NewOverviewUseCase constructs OverviewUseCase.
func NewOverviewUseCase(
	dashboards repository.DashboardRepository,
	notifications repository.NotificationRepository,
	activities repository.ActivityRepository,
	users repository.UserRepository,
) *OverviewUseCase {
	return &OverviewUseCase{dashboards: dashboards, notifications: notifications, activities: activities, users: users}
}

// Dashboard returns overview metrics.
func (u *OverviewUseCase) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	d, err := u.dashboards.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	return d, nil
}

// Notifications returns navbar notifications.
func (u *OverviewUseCase) Notifications(ctx context.Context) ([]model.Notification, error) {
	items, err := u.notifications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return items, nil
}

// Activities returns activities joined with user images. Activities of
// unknown users get an empty image.
func (u *OverviewUseCase) Activities(ctx context.Context) ([]model.ActivityEntry, error) {
	items, err := u.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	images := make(map[int64]string, len(users))
	for _, user := range users {
		images[user.ID] = user.ProfileImage
	}

	entries := make([]model.ActivityEntry, len(items))
	for i, a := range items {
		entries[i] = model.ActivityEntry{Activity: a, Image: images[a.UserID]}
	}
	return entries, nil
}

// Contacts returns the contact list.
func (u *OverviewUseCase) Contacts(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	return users, nil
}
