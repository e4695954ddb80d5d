package viewstate

import (
	"context"

	"github.com/taneeshamadhu18/video-call-assignment/internal/client"
	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// participantAPI is the subset of *client.Client the controller needs.
type participantAPI interface {
	ListParticipants(ctx context.Context, p client.ListParams) ([]domain.Participant, error)
	CountParticipants(ctx context.Context, search string) (int, error)
	GetParticipant(ctx context.Context, id int64) (*domain.Participant, error)
	SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetStatus(ctx context.Context, id int64, online bool) (*domain.Participant, error)
}

// Store is a string key-value store. The controller uses one durable store
// for preferences and one volatile store for session media state.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MediaCapture drives local capture devices.
type MediaCapture interface {
	Start(ctx context.Context, kind MediaKind) error
	Stop(kind MediaKind) error
}

const (
	keyTheme    = "theme"
	keyViewMode = "view_mode"
	keySearch   = "search"
	keyPage     = "page"
	keyMedia    = "media"
)
