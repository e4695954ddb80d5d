package participant

import (
	"context"
	"fmt"
	"strings"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// List returns one page of participants matching the search text, ordered by id.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Participant, error) {
	if err := input.Validate(s.limits.MaxPageSize); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if items == nil {
		items = []domain.Participant{}
	}
	return items, nil
}

// Count returns how many participants match search, ignoring paging.
func (s *Service) Count(ctx context.Context, search string) (int, error) {
	total, err := s.repo.Count(ctx, strings.TrimSpace(search))
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return total, nil
}

// Get returns a single participant or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Participant, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}
