// filepath: internal/services/effect_service.go
package services

import (
	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
)

var _ EffectService = (*effectService)(nil)

// effectService handles business logic for the timed sub-entries of days.
type effectService struct {
	Repo *repository.Repository
}

// NewEffectService creates a new EffectService.
func NewEffectService(repo *repository.Repository) *effectService {
	return &effectService{Repo: repo}
}

func validateEffectFields(t string, rate int, description string) error {
	if err := validateTime(t); err != nil {
		return err
	}
	if err := validateRate(rate); err != nil {
		return err
	}
	return validateLength("description", description, 5, 100)
}

// Create attaches a new effect to one of the owner's days. The parent day
// must exist and belong to the owner.
func (s *effectService) Create(ownerID int64, req models.CreateEffectRequest) (*models.Effect, error) {
	if err := validateEffectFields(req.Time, req.Rate, req.Description); err != nil {
		return nil, err
	}
	// Also covers cross-owner foreign keys: a day owned by someone else is
	// simply not found.
	if _, err := s.Repo.GetDayByID(ownerID, req.ForeignKey); err != nil {
		return nil, err
	}

	effect := &models.Effect{
		Time:        req.Time,
		Rate:        req.Rate,
		Description: req.Description,
		ForeignKey:  req.ForeignKey,
		Owner:       ownerID,
	}
	created, err := s.Repo.CreateEffect(effect)
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("EffectService: created effect %d on day %d for user %d", created.ID, created.ForeignKey, ownerID)
	return created, nil
}

// List returns all of the owner's effects across all days.
func (s *effectService) List(ownerID int64) ([]models.Effect, error) {
	return s.Repo.GetEffects(ownerID)
}

// GetByID returns one of the owner's effects by primary key.
func (s *effectService) GetByID(ownerID, id int64) (*models.Effect, error) {
	return s.Repo.GetEffectByID(ownerID, id)
}

// ListByDay returns the effects attached to one of the owner's days.
func (s *effectService) ListByDay(ownerID, dayID int64) ([]models.Effect, error) {
	if _, err := s.Repo.GetDayByID(ownerID, dayID); err != nil {
		return nil, err
	}
	return s.Repo.GetEffectsByDay(ownerID, dayID)
}

// Filter returns the owner's effects carrying any of the given rates.
func (s *effectService) Filter(ownerID int64, rates []int) ([]models.Effect, error) {
	for _, r := range rates {
		if err := validateRate(r); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetEffectsByRates(ownerID, rates)
}

// Average returns the mean rating of a day's effects.
func (s *effectService) Average(ownerID, dayID int64) (*models.EffectAverage, error) {
	if _, err := s.Repo.GetDayByID(ownerID, dayID); err != nil {
		return nil, err
	}
	avg, count, err := s.Repo.GetAverageRate(ownerID, dayID)
	if err != nil {
		return nil, err
	}
	return &models.EffectAverage{ForeignKey: dayID, AverageRate: round2(avg), Count: count}, nil
}

// Update applies a partial update to an effect. Nil fields keep their
// stored value.
func (s *effectService) Update(ownerID, id int64, req models.UpdateEffectRequest) (*models.Effect, error) {
	current, err := s.Repo.GetEffectByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	t, rate, desc := current.Time, current.Rate, current.Description
	if req.Time != nil {
		t = *req.Time
	}
	if req.Rate != nil {
		rate = *req.Rate
	}
	if req.Description != nil {
		desc = *req.Description
	}
	if err := validateEffectFields(t, rate, desc); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateEffect(ownerID, id, t, rate, desc); err != nil {
		return nil, err
	}
	return s.Repo.GetEffectByID(ownerID, id)
}

// Delete removes a single effect.
func (s *effectService) Delete(ownerID, id int64) error {
	return s.Repo.DeleteEffect(ownerID, id)
}

// DeleteByDay removes all effects attached to one of the owner's days.
func (s *effectService) DeleteByDay(ownerID, dayID int64) error {
	if _, err := s.Repo.GetDayByID(ownerID, dayID); err != nil {
		return err
	}
	return s.Repo.DeleteEffectsByDay(ownerID, dayID)
}

// DeleteAll wipes every effect the owner has tracked.
func (s *effectService) DeleteAll(ownerID int64) error {
	logging.Log.Infof("EffectService: deleting all effects for user %d", ownerID)
	return s.Repo.DeleteEffects(ownerID)
}
