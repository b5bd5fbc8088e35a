package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"savemyfridge/internal/core"
	"savemyfridge/internal/expiry"
	"savemyfridge/internal/points"
	"savemyfridge/internal/waste"
)

const (
	// Points awarded for eating an ingredient before it goes bad.
	consumePoints = 30

	// The discard action always logs this fixed mass. No per-ingredient
	// mass data exists, so nothing smarter can be inferred.
	discardMassGrams = 300
)

// AddInput carries the user-submitted fields for a new ingredient.
type AddInput struct {
	Name         string
	Category     string
	Quantity     int
	ExpiryDate   time.Time
	StorageTip   string
	DisposalRule string
}

type Service struct {
	repo   Repository
	points *points.Service
	waste  *waste.Service
	now    func() time.Time
}

func NewService(repo Repository, pointsSvc *points.Service, wasteSvc *waste.Service) *Service {
	return &Service{
		repo:   repo,
		points: pointsSvc,
		waste:  wasteSvc,
		now:    time.Now,
	}
}

func (s *Service) Add(ctx context.Context, in AddInput) (*Ingredient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", core.ErrValidation)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", core.ErrValidation)
	}
	category, ok := ParseCategory(in.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q: %w", in.Category, core.ErrValidation)
	}

	ing := &Ingredient{
		Name:     in.Name,
		Category: category,
		Quantity: in.Quantity,
		ExpiryDate: time.Date(
			in.ExpiryDate.Year(), in.ExpiryDate.Month(), in.ExpiryDate.Day(),
			0, 0, 0, 0, time.UTC,
		),
		StorageTip:   in.StorageTip,
		DisposalRule: in.DisposalRule,
	}
	if err := s.repo.Save(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Remove deletes an ingredient without any ledger side effect. Removing an
// unknown id is a no-op so a double-submitted delete never errors.
func (s *Service) Remove(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

// List returns the inventory sorted by expiry date ascending.
func (s *Service) List(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.ListByExpiry(ctx)
}

// Search is a case-sensitive substring search over ingredient names.
func (s *Service) Search(ctx context.Context, substr string) ([]*Ingredient, error) {
	return s.repo.FindByName(ctx, substr)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Names lists the distinct ingredient names currently in the fridge, the
// "owned" set fed to the recipe matcher.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	return s.repo.Names(ctx)
}

// Expiring annotates the inventory with days remaining relative to today and
// returns the n items closest to expiry.
func (s *Service) Expiring(ctx context.Context, today time.Time, n int) ([]expiry.Annotated[*Ingredient], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return expiry.TopN(expiry.Annotate(items, today), n), nil
}

// Consume removes an ingredient and awards the frugal-use points. The
// ledger entry is appended only after the removal actually happened, so a
// racing duplicate consume awards at most once.
func (s *Service) Consume(ctx context.Context, id string) (*Ingredient, error) {
	ing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("ingredient %s: %w", id, core.ErrNotFound)
	}

	description := fmt.Sprintf("%s 알뜰 사용", ing.Name)
	if _, err := s.points.Award(ctx, description, consumePoints); err != nil {
		return nil, err
	}
	return ing, nil
}

// Discard removes an ingredient and logs one waste event dated today with
// the fixed default mass. Exactly one ledger entry per actual removal,
// never a points entry as well.
func (s *Service) Discard(ctx context.Context, id string) (*Ingredient, error) {
	ing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("ingredient %s: %w", id, core.ErrNotFound)
	}

	if _, err := s.waste.Record(ctx, s.now(), discardMassGrams); err != nil {
		return nil, err
	}
	return ing, nil
}
