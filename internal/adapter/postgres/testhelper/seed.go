package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueSearch returns a token that no other test's rows contain, so a test
// can search for exactly its own participants in the shared database.
func UniqueSearch() string {
	return "zz" + uniqueSuffix()
}

// SeedParticipant inserts a participant whose name contains tag and returns it.
func SeedParticipant(t *testing.T, pool *pgxpool.Pool, tag string, role domain.Role) domain.Participant {
	t.Helper()

	var p domain.Participant
	err := pool.QueryRow(context.Background(),
		`INSERT INTO participants (name, email, role, online, mic_on, camera_on)
		 VALUES ($1, $2, $3, false, true, true)
		 RETURNING id, name, email, role, online, mic_on, camera_on, created_at, updated_at`,
		"Seed "+tag+" "+uniqueSuffix(), uniqueSuffix()+"@"+tag+".test", string(role),
	).Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.Online, &p.MicOn, &p.CameraOn, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipant: %v", err)
	}
	return p
}

// SeedParticipants inserts n participants sharing tag, in id order.
func SeedParticipants(t *testing.T, pool *pgxpool.Pool, tag string, n int) []domain.Participant {
	t.Helper()
	out := make([]domain.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SeedParticipant(t, pool, tag, domain.RoleGuest))
	}
	return out
}
