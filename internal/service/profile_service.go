package service

import (
	"context"

	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// ProfileService handles the configurable portfolio description and milestones.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new ProfileService with the provided repository dependency.
func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetInfo retrieves the portfolio info, empty when none has been saved.
func (s *ProfileService) GetInfo() (model.PortfolioInfo, error) {
	return s.profileRepo.GetInfo()
}

// SaveInfo creates or updates the portfolio info.
func (s *ProfileService) SaveInfo(ctx context.Context, info model.PortfolioInfo) error {
	return s.profileRepo.SaveInfo(ctx, info)
}

// GetMilestones retrieves all milestones in display order.
func (s *ProfileService) GetMilestones() ([]model.Milestone, error) {
	return s.profileRepo.GetMilestones()
}

// SaveMilestones replaces the milestone list, keeping the given order.
func (s *ProfileService) SaveMilestones(ctx context.Context, milestones []model.Milestone) error {
	return s.profileRepo.ReplaceMilestones(ctx, milestones)
}
