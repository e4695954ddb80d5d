package rest

import (
	"context"
	"sync"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
	"github.com/taneeshamadhu18/video-call-assignment/internal/service/participant"
)

var _ participantService = &participantServiceMock{}

type participantServiceMock struct {
	ListFunc          func(ctx context.Context, input participant.ListInput) ([]domain.Participant, error)
	CountFunc         func(ctx context.Context, search string) (int, error)
	GetFunc           func(ctx context.Context, id int64) (*domain.Participant, error)
	SetMicrophoneFunc func(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetCameraFunc     func(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetStatusFunc     func(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetMediaFunc      func(ctx context.Context, input participant.SetMediaInput) (*domain.Participant, error)

	calls struct {
		List     []participant.ListInput
		Count    []string
		Get      []int64
		SetFlag  []participant.SetFlagInput
		SetMedia []participant.SetMediaInput
	}
	lock sync.RWMutex
}

func (m *participantServiceMock) List(ctx context.Context, input participant.ListInput) ([]domain.Participant, error) {
	m.lock.Lock()
	m.calls.List = append(m.calls.List, input)
	m.lock.Unlock()
	return m.ListFunc(ctx, input)
}

func (m *participantServiceMock) ListCalls() []participant.ListInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.List
}

func (m *participantServiceMock) Count(ctx context.Context, search string) (int, error) {
	m.lock.Lock()
	m.calls.Count = append(m.calls.Count, search)
	m.lock.Unlock()
	return m.CountFunc(ctx, search)
}

func (m *participantServiceMock) CountCalls() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Count
}

func (m *participantServiceMock) Get(ctx context.Context, id int64) (*domain.Participant, error) {
	m.lock.Lock()
	m.calls.Get = append(m.calls.Get, id)
	m.lock.Unlock()
	return m.GetFunc(ctx, id)
}

func (m *participantServiceMock) GetCalls() []int64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Get
}

func (m *participantServiceMock) recordFlag(input participant.SetFlagInput) {
	m.lock.Lock()
	m.calls.SetFlag = append(m.calls.SetFlag, input)
	m.lock.Unlock()
}

func (m *participantServiceMock) SetMicrophone(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error) {
	m.recordFlag(input)
	return m.SetMicrophoneFunc(ctx, input)
}

func (m *participantServiceMock) SetCamera(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error) {
	m.recordFlag(input)
	return m.SetCameraFunc(ctx, input)
}

func (m *participantServiceMock) SetStatus(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error) {
	m.recordFlag(input)
	return m.SetStatusFunc(ctx, input)
}

func (m *participantServiceMock) SetFlagCalls() []participant.SetFlagInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SetFlag
}

func (m *participantServiceMock) SetMedia(ctx context.Context, input participant.SetMediaInput) (*domain.Participant, error) {
	m.lock.Lock()
	m.calls.SetMedia = append(m.calls.SetMedia, input)
	m.lock.Unlock()
	return m.SetMediaFunc(ctx, input)
}

func (m *participantServiceMock) SetMediaCalls() []participant.SetMediaInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SetMedia
}

func (m *participantServiceMock) DefaultLimit() int { return participant.DefaultPageSize }
