package waste

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savemyfridge/internal/core"
)

// ErrInsufficientData is returned by Trend when fewer than two events exist.
var ErrInsufficientData = errors.New("insufficient data")

// TrendReport compares the earliest and latest recorded amounts.
// DeltaGrams is first minus last, so a positive value means waste went down.
type TrendReport struct {
	FirstGrams int `json:"first_g"`
	LastGrams  int `json:"last_g"`
	DeltaGrams int `json:"delta_g"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one disposal event. The time-of-day component of date is
// dropped; only the calendar date is kept.
func (s *Service) Record(ctx context.Context, date time.Time, grams int) (*Event, error) {
	if grams < 0 {
		return nil, fmt.Errorf("amount must not be negative: %w", core.ErrValidation)
	}

	ev := &Event{
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		AmountGrams: grams,
	}
	if err := s.repo.Append(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Total(ctx context.Context) (int, error) {
	return s.repo.TotalGrams(ctx)
}

// Trend reports whether waste is going down, from the first to the last
// chronologically recorded event.
func (s *Service) Trend(ctx context.Context) (*TrendReport, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) < 2 {
		return nil, ErrInsufficientData
	}

	first := events[0].AmountGrams
	last := events[len(events)-1].AmountGrams
	return &TrendReport{
		FirstGrams: first,
		LastGrams:  last,
		DeltaGrams: first - last,
	}, nil
}
