package points

import (
	"context"
	"fmt"
	"strings"
	"time"

	"savemyfridge/internal/core"
)

// One level spans this many points.
const pointsPerLevel = 100

const (
	CheckInPoints      = 10
	checkInDescription = "출석체크"
)

// Action is a predefined eco action a user can report.
type Action struct {
	Description string `json:"description"`
	Points      int    `json:"points"`
}

var ecoActions = map[string]Action{
	"use_urgent":     {Description: "임박 재료 사용", Points: 30},
	"delivery_reuse": {Description: "배달음식 재활용 레시피 실천", Points: 20},
	"waste_reduced":  {Description: "음식물 쓰레기 감소", Points: 40},
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Award appends one ledger entry. Points may be negative in principle;
// only the description is validated.
func (s *Service) Award(ctx context.Context, description string, pts int) (*Event, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required: %w", core.ErrValidation)
	}

	ev := &Event{
		OccurredAt:  s.now(),
		Description: description,
		Points:      pts,
	}
	if err := s.repo.Append(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// CheckIn awards the daily attendance points.
func (s *Service) CheckIn(ctx context.Context) (*Event, error) {
	return s.Award(ctx, checkInDescription, CheckInPoints)
}

// RecordAction awards the points for a predefined eco action code.
func (s *Service) RecordAction(ctx context.Context, code string) (*Event, error) {
	action, ok := ecoActions[code]
	if !ok {
		return nil, fmt.Errorf("unknown action %q: %w", code, core.ErrValidation)
	}
	return s.Award(ctx, action.Description, action.Points)
}

func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Total(ctx context.Context) (int, error) {
	return s.repo.Total(ctx)
}

// Summary is the gamification view over the running total. All fields are
// derived; none of them is stored.
type Summary struct {
	Total     int `json:"total"`
	Level     int `json:"level"`
	Earned    int `json:"earned"`
	Remaining int `json:"remaining"`
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return nil, err
	}

	earned, remaining := Progress(total)
	return &Summary{
		Total:     total,
		Level:     Level(total),
		Earned:    earned,
		Remaining: remaining,
	}, nil
}

// Level is floor(total/100)+1. A total of 0 is level 1: everyone starts at
// level 1, the +1 baseline is intentional.
func Level(total int) int {
	return floorDiv(total, pointsPerLevel) + 1
}

// Progress splits a total into points earned within the current level and
// points remaining to the next one. Earned is in [0,100) and remaining in
// (0,100]: a fresh zero shows the full 100 P still to go.
func Progress(total int) (earned, remaining int) {
	earned = ((total % pointsPerLevel) + pointsPerLevel) % pointsPerLevel
	return earned, pointsPerLevel - earned
}

// floorDiv rounds toward negative infinity, unlike Go's integer division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
