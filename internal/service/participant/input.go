package participant

import (
	"fmt"
	"strings"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// ListInput holds the parameters for listing participants.
type ListInput struct {
	Search string
	Limit  int
	Offset int
}

// Validate checks paging bounds against maxLimit and collects all errors.
func (i ListInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 1 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.ParticipantFilter {
	return domain.ParticipantFilter{
		Search: strings.TrimSpace(i.Search),
		Limit:  i.Limit,
		Offset: i.Offset,
	}
}

// SetFlagInput toggles one server-side flag of a participant.
type SetFlagInput struct {
	ID    int64
	Value bool
}

// Validate checks the participant id.
func (i SetFlagInput) Validate() error {
	return validateID(i.ID)
}

// SetMediaInput sets both media flags at once.
type SetMediaInput struct {
	ID       int64
	MicOn    bool
	CameraOn bool
}

// Validate checks the participant id.
func (i SetMediaInput) Validate() error {
	return validateID(i.ID)
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("participant_id", "must be a positive integer")
	}
	return nil
}
