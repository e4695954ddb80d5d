package viewstate

import (
	"context"
	"sync"

	"github.com/taneeshamadhu18/video-call-assignment/internal/client"
	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

var _ participantAPI = &participantAPIMock{}

type participantAPIMock struct {
	ListParticipantsFunc  func(ctx context.Context, p client.ListParams) ([]domain.Participant, error)
	CountParticipantsFunc func(ctx context.Context, search string) (int, error)
	GetParticipantFunc    func(ctx context.Context, id int64) (*domain.Participant, error)
	SetMicrophoneFunc     func(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetCameraFunc         func(ctx context.Context, id int64, on bool) (*domain.Participant, error)
	SetStatusFunc         func(ctx context.Context, id int64, online bool) (*domain.Participant, error)

	calls struct {
		List  []client.ListParams
		Count []string
		Get   []int64
		Flags []flagCall
	}
	mu sync.RWMutex
}

type flagCall struct {
	Method string
	ID     int64
	Value  bool
}

func (m *participantAPIMock) ListParticipants(ctx context.Context, p client.ListParams) ([]domain.Participant, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, p)
	m.mu.Unlock()
	if m.ListParticipantsFunc == nil {
		return []domain.Participant{}, nil
	}
	return m.ListParticipantsFunc(ctx, p)
}

func (m *participantAPIMock) CountParticipants(ctx context.Context, search string) (int, error) {
	m.mu.Lock()
	m.calls.Count = append(m.calls.Count, search)
	m.mu.Unlock()
	if m.CountParticipantsFunc == nil {
		return 0, nil
	}
	return m.CountParticipantsFunc(ctx, search)
}

func (m *participantAPIMock) GetParticipant(ctx context.Context, id int64) (*domain.Participant, error) {
	m.mu.Lock()
	m.calls.Get = append(m.calls.Get, id)
	m.mu.Unlock()
	if m.GetParticipantFunc == nil {
		panic("participantAPIMock.GetParticipantFunc: method is nil but GetParticipant was just called")
	}
	return m.GetParticipantFunc(ctx, id)
}

func (m *participantAPIMock) SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	m.recordFlag("SetMicrophone", id, on)
	if m.SetMicrophoneFunc == nil {
		panic("participantAPIMock.SetMicrophoneFunc: method is nil but SetMicrophone was just called")
	}
	return m.SetMicrophoneFunc(ctx, id, on)
}

func (m *participantAPIMock) SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	m.recordFlag("SetCamera", id, on)
	if m.SetCameraFunc == nil {
		panic("participantAPIMock.SetCameraFunc: method is nil but SetCamera was just called")
	}
	return m.SetCameraFunc(ctx, id, on)
}

func (m *participantAPIMock) SetStatus(ctx context.Context, id int64, online bool) (*domain.Participant, error) {
	m.recordFlag("SetStatus", id, online)
	if m.SetStatusFunc == nil {
		panic("participantAPIMock.SetStatusFunc: method is nil but SetStatus was just called")
	}
	return m.SetStatusFunc(ctx, id, online)
}

func (m *participantAPIMock) recordFlag(method string, id int64, value bool) {
	m.mu.Lock()
	m.calls.Flags = append(m.calls.Flags, flagCall{Method: method, ID: id, Value: value})
	m.mu.Unlock()
}

func (m *participantAPIMock) ListCalls() []client.ListParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]client.ListParams(nil), m.calls.List...)
}

func (m *participantAPIMock) GetCalls() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int64(nil), m.calls.Get...)
}

func (m *participantAPIMock) FlagCalls() []flagCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]flagCall(nil), m.calls.Flags...)
}

// ---------------------------------------------------------------------------

var _ MediaCapture = &mediaCaptureMock{}

type mediaCaptureMock struct {
	StartFunc func(ctx context.Context, kind MediaKind) error
	StopFunc  func(kind MediaKind) error

	mu     sync.Mutex
	events []string
}

func (m *mediaCaptureMock) Start(ctx context.Context, kind MediaKind) error {
	m.mu.Lock()
	m.events = append(m.events, "start "+string(kind))
	m.mu.Unlock()
	if m.StartFunc == nil {
		return nil
	}
	return m.StartFunc(ctx, kind)
}

func (m *mediaCaptureMock) Stop(kind MediaKind) error {
	m.mu.Lock()
	m.events = append(m.events, "stop "+string(kind))
	m.mu.Unlock()
	if m.StopFunc == nil {
		return nil
	}
	return m.StopFunc(kind)
}

func (m *mediaCaptureMock) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.events...)
}
