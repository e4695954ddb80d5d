package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// SetMicrophone records whether the participant intends their microphone on.
func (s *Service) SetMicrophone(ctx context.Context, input SetFlagInput) (*domain.Participant, error) {
	return s.setFlag(ctx, domain.FieldMicrophone, input, s.repo.SetMicrophone)
}

// SetCamera records whether the participant intends their camera on.
func (s *Service) SetCamera(ctx context.Context, input SetFlagInput) (*domain.Participant, error) {
	return s.setFlag(ctx, domain.FieldCamera, input, s.repo.SetCamera)
}

// SetStatus marks the participant online or offline.
func (s *Service) SetStatus(ctx context.Context, input SetFlagInput) (*domain.Participant, error) {
	return s.setFlag(ctx, domain.FieldOnline, input, s.repo.SetOnline)
}

// SetMedia sets microphone and camera in one write.
func (s *Service) SetMedia(ctx context.Context, input SetMediaInput) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.SetMedia(ctx, input.ID, input.MicOn, input.CameraOn)
	if err != nil {
		return nil, fmt.Errorf("update media: %w", err)
	}

	s.log.InfoContext(ctx, "participant updated",
		slog.Int64("participant_id", p.ID),
		slog.Bool("mic_on", p.MicOn),
		slog.Bool("camera_on", p.CameraOn),
	)
	return p, nil
}

type flagWriter func(ctx context.Context, id int64, value bool) (*domain.Participant, error)

func (s *Service) setFlag(ctx context.Context, field domain.MediaField, input SetFlagInput, write flagWriter) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := write(ctx, input.ID, input.Value)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", field, err)
	}

	s.log.InfoContext(ctx, "participant updated",
		slog.Int64("participant_id", p.ID),
		slog.String("field", field.String()),
		slog.Bool("value", input.Value),
	)
	return p, nil
}
