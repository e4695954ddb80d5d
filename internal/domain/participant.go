package domain

import "time"

// Role is a participant's role in the call. Any number of participants may be hosts.
type Role string

const (
	RoleHost  Role = "Host"
	RoleGuest Role = "Guest"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleHost, RoleGuest:
		return true
	}
	return false
}

// Participant is a member of a video call as stored by the server.
// MicOn and CameraOn are the server-side intent flags, not live capture state.
type Participant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    *string   `json:"avatar"`
	Online    bool      `json:"online"`
	MicOn     bool      `json:"mic_on"`
	CameraOn  bool      `json:"camera_on"`
	AboutMe   *string   `json:"about_me"`
	ResumeURL *string   `json:"resume_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsHost reports whether the participant hosts the call.
func (p Participant) IsHost() bool { return p.Role == RoleHost }

// NewParticipant is the provisioning input for a participant row.
type NewParticipant struct {
	Name      string
	Email     string
	Role      Role
	Avatar    *string
	Online    bool
	MicOn     bool
	CameraOn  bool
	AboutMe   *string
	ResumeURL *string
}

// Validate checks the provisioning fields.
func (n NewParticipant) Validate() error {
	var errs []FieldError
	if n.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if n.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	if !n.Role.IsValid() {
		errs = append(errs, FieldError{Field: "role", Message: "must be Host or Guest"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ParticipantFilter narrows a participant listing. Search matches name, email
// or role case-insensitively; an empty Search matches everyone.
type ParticipantFilter struct {
	Search string
	Limit  int
	Offset int
}

// MediaField names a single server-side flag that can be toggled on its own.
type MediaField string

const (
	FieldMicrophone MediaField = "mic_on"
	FieldCamera     MediaField = "camera_on"
	FieldOnline     MediaField = "online"
)

func (f MediaField) String() string { return string(f) }

func (f MediaField) IsValid() bool {
	switch f {
	case FieldMicrophone, FieldCamera, FieldOnline:
		return true
	}
	return false
}
