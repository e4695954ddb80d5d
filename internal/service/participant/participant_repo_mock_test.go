package participant

import (
	"context"
	"sync"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

var _ participantRepo = &participantRepoMock{}

type participantRepoMock struct {
	ListFunc          func(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
	CountFunc         func(ctx context.Context, search string) (int, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Participant, error)
	SetMicrophoneFunc func(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetCameraFunc     func(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetOnlineFunc     func(ctx context.Context, id int64, online bool) (*domain.Participant, error)
	SetMediaFunc      func(ctx context.Context, id int64, micOn, cameraOn bool) (*domain.Participant, error)

	calls struct {
		List []struct {
			Filter domain.ParticipantFilter
		}
		Count []struct {
			Search string
		}
		GetByID []struct {
			ID int64
		}
		SetFlag []struct {
			Method string
			ID     int64
			Value  bool
		}
		SetMedia []struct {
			ID       int64
			MicOn    bool
			CameraOn bool
		}
	}
	lock sync.RWMutex
}

func (mock *participantRepoMock) List(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	if mock.ListFunc == nil {
		panic("participantRepoMock.ListFunc: method is nil but participantRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.ParticipantFilter }{filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *participantRepoMock) ListCalls() []struct{ Filter domain.ParticipantFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *participantRepoMock) Count(ctx context.Context, search string) (int, error) {
	if mock.CountFunc == nil {
		panic("participantRepoMock.CountFunc: method is nil but participantRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{ Search string }{search})
	mock.lock.Unlock()
	return mock.CountFunc(ctx, search)
}

func (mock *participantRepoMock) CountCalls() []struct{ Search string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *participantRepoMock) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	if mock.GetByIDFunc == nil {
		panic("participantRepoMock.GetByIDFunc: method is nil but participantRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *participantRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *participantRepoMock) recordFlag(method string, id int64, value bool) {
	mock.lock.Lock()
	mock.calls.SetFlag = append(mock.calls.SetFlag, struct {
		Method string
		ID     int64
		Value  bool
	}{method, id, value})
	mock.lock.Unlock()
}

func (mock *participantRepoMock) SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	if mock.SetMicrophoneFunc == nil {
		panic("participantRepoMock.SetMicrophoneFunc: method is nil but participantRepo.SetMicrophone was just called")
	}
	mock.recordFlag("SetMicrophone", id, on)
	return mock.SetMicrophoneFunc(ctx, id, on)
}

func (mock *participantRepoMock) SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	if mock.SetCameraFunc == nil {
		panic("participantRepoMock.SetCameraFunc: method is nil but participantRepo.SetCamera was just called")
	}
	mock.recordFlag("SetCamera", id, on)
	return mock.SetCameraFunc(ctx, id, on)
}

func (mock *participantRepoMock) SetOnline(ctx context.Context, id int64, online bool) (*domain.Participant, error) {
	if mock.SetOnlineFunc == nil {
		panic("participantRepoMock.SetOnlineFunc: method is nil but participantRepo.SetOnline was just called")
	}
	mock.recordFlag("SetOnline", id, online)
	return mock.SetOnlineFunc(ctx, id, online)
}

func (mock *participantRepoMock) SetFlagCalls() []struct {
	Method string
	ID     int64
	Value  bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetFlag
}

func (mock *participantRepoMock) SetMedia(ctx context.Context, id int64, micOn, cameraOn bool) (*domain.Participant, error) {
	if mock.SetMediaFunc == nil {
		panic("participantRepoMock.SetMediaFunc: method is nil but participantRepo.SetMedia was just called")
	}
	mock.lock.Lock()
	mock.calls.SetMedia = append(mock.calls.SetMedia, struct {
		ID       int64
		MicOn    bool
		CameraOn bool
	}{id, micOn, cameraOn})
	mock.lock.Unlock()
	return mock.SetMediaFunc(ctx, id, micOn, cameraOn)
}

func (mock *participantRepoMock) SetMediaCalls() []struct {
	ID       int64
	MicOn    bool
	CameraOn bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetMedia
}
