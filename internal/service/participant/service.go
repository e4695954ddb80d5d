package participant

import (
	"context"
	"log/slog"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

type participantRepo interface {
	List(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
	Count(ctx context.Context, search string) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Participant, error)

	SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetOnline(ctx context.Context, id int64, online bool) (*domain.Participant, error)
	SetMedia(ctx context.Context, id int64, micOn, cameraOn bool) (*domain.Participant, error)
}

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Limits bounds list paging. Zero values fall back to the package defaults.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service provides participant queries and single-flag updates.
type Service struct {
	repo   participantRepo
	limits Limits
	log    *slog.Logger
}

// NewService creates a new participant service.
func NewService(log *slog.Logger, repo participantRepo, limits Limits) *Service {
	if limits.DefaultPageSize <= 0 {
		limits.DefaultPageSize = DefaultPageSize
	}
	if limits.MaxPageSize <= 0 {
		limits.MaxPageSize = MaxPageSize
	}
	return &Service{
		repo:   repo,
		limits: limits,
		log:    log.With("service", "participant"),
	}
}

// DefaultLimit is the page size applied when a caller omits one.
func (s *Service) DefaultLimit() int { return s.limits.DefaultPageSize }
