// Package seeder provisions the participants table with a fixed demo roster.
package seeder

import (
	"context"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// ParticipantSeedRepo is the write contract consumed by the pipeline.
// Implemented by participant.Repo.
type ParticipantSeedRepo interface {
	DeleteAll(ctx context.Context) error
	Create(ctx context.Context, in domain.NewParticipant) (*domain.Participant, error)
	Count(ctx context.Context, search string) (int, error)
}

// TxRunner runs fn inside one transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
