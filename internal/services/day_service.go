// filepath: internal/services/day_service.go
package services

import (
	"math"

	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
)

// round2 rounds to two decimal places, the precision averages are served in.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ DayService = (*dayService)(nil)

// dayService handles business logic for day entries.
type dayService struct {
	Repo *repository.Repository
}

// NewDayService creates a new DayService.
func NewDayService(repo *repository.Repository) *dayService {
	return &dayService{Repo: repo}
}

func validateDayRequest(date string, red, green, blue, rate int) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	return validateColorAndRate(red, green, blue, rate)
}

func validateColorAndRate(red, green, blue, rate int) error {
	if err := validateChannel("red", red); err != nil {
		return err
	}
	if err := validateChannel("green", green); err != nil {
		return err
	}
	if err := validateChannel("blue", blue); err != nil {
		return err
	}
	return validateRate(rate)
}

// Create stores a new day for the owner. The (owner, date) pair is unique.
func (s *dayService) Create(ownerID int64, req models.CreateDayRequest) (*models.Day, error) {
	if err := validateDayRequest(req.Date, req.Red, req.Green, req.Blue, req.Rate); err != nil {
		return nil, err
	}
	day := &models.Day{
		Date:     req.Date,
		Red:      req.Red,
		Green:    req.Green,
		Blue:     req.Blue,
		Rate:     req.Rate,
		AutoRate: req.AutoRate,
		Owner:    ownerID,
	}
	created, err := s.Repo.CreateDay(day)
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("DayService: created day %s (ID %d) for user %d", created.Date, created.ID, ownerID)
	return created, nil
}

// withAverage decorates a day with the mean rating of its effects. A day
// without effects reports its own stored rate as the average.
func (s *dayService) withAverage(day *models.Day) (*models.DayWithAverage, error) {
	avg, count, err := s.Repo.GetAverageRate(day.Owner, day.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		avg = float64(day.Rate)
	}
	return &models.DayWithAverage{Day: *day, AverageRate: round2(avg)}, nil
}

// GetByDate returns the owner's day for a dd/mm/yyyy date.
func (s *dayService) GetByDate(ownerID int64, date string) (*models.DayWithAverage, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	day, err := s.Repo.GetDayByDate(ownerID, date)
	if err != nil {
		return nil, err
	}
	return s.withAverage(day)
}

// GetByID returns one of the owner's days by primary key.
func (s *dayService) GetByID(ownerID, id int64) (*models.DayWithAverage, error) {
	day, err := s.Repo.GetDayByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.withAverage(day)
}

// List returns every day the owner has tracked.
func (s *dayService) List(ownerID int64) ([]models.DayWithAverage, error) {
	days, err := s.Repo.GetDays(ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(days)
}

// Overview returns the owner's days matching the given IDs. Unknown IDs are
// silently skipped.
func (s *dayService) Overview(ownerID int64, ids []int64) ([]models.DayWithAverage, error) {
	days, err := s.Repo.GetDaysByIDs(ownerID, ids)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(days)
}

func (s *dayService) decorateAll(days []models.Day) ([]models.DayWithAverage, error) {
	result := make([]models.DayWithAverage, 0, len(days))
	for i := range days {
		decorated, err := s.withAverage(&days[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *decorated)
	}
	return result, nil
}

// Update changes a day's color and rating. Date and owner are immutable.
func (s *dayService) Update(ownerID, id int64, req models.UpdateDayRequest) (*models.Day, error) {
	if err := validateColorAndRate(req.Red, req.Green, req.Blue, req.Rate); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateDay(ownerID, id, req.Red, req.Green, req.Blue, req.Rate, req.AutoRate); err != nil {
		return nil, err
	}
	return s.Repo.GetDayByID(ownerID, id)
}

// Delete removes a day and its effects.
func (s *dayService) Delete(ownerID, id int64) error {
	return s.Repo.DeleteDay(ownerID, id)
}

// DeleteAll wipes every day (and effect) the owner has tracked.
func (s *dayService) DeleteAll(ownerID int64) error {
	logging.Log.Infof("DayService: deleting all days for user %d", ownerID)
	return s.Repo.DeleteDays(ownerID)
}
