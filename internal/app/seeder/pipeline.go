package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// Config controls a seeding run.
type Config struct {
	// Reset empties the table and restarts ids before inserting.
	Reset bool
	// DryRun validates the roster without writing.
	DryRun bool
	// SkipIfPopulated leaves a non-empty table untouched unless Reset is set.
	SkipIfPopulated bool
}

// Result holds the outcome of a run.
type Result struct {
	Inserted int
	Skipped  bool
	Duration time.Duration
}

// Pipeline inserts the demo roster in a single transaction.
type Pipeline struct {
	log  *slog.Logger
	repo ParticipantSeedRepo
	tx   TxRunner
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo ParticipantSeedRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		tx:   tx,
		cfg:  cfg,
	}
}

// Run seeds the roster. Either every participant is inserted or none is.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	roster := Roster()

	for i, in := range roster {
		if err := in.Validate(); err != nil {
			return Result{}, fmt.Errorf("roster[%d] %s: %w", i, in.Email, err)
		}
	}
	if p.cfg.DryRun {
		p.log.Info("dry run, nothing written", slog.Int("participants", len(roster)))
		return Result{Duration: time.Since(start)}, nil
	}

	var res Result
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if p.cfg.Reset {
			if err := p.repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("reset participants: %w", err)
			}
		} else if p.cfg.SkipIfPopulated {
			n, err := p.repo.Count(ctx, "")
			if err != nil {
				return fmt.Errorf("count participants: %w", err)
			}
			if n > 0 {
				res.Skipped = true
				return nil
			}
		}

		for _, in := range roster {
			created, err := p.repo.Create(ctx, in)
			if err != nil {
				return fmt.Errorf("create %s: %w", in.Email, err)
			}
			p.log.Debug("participant created",
				slog.Int64("participant_id", created.ID),
				slog.String("email", created.Email),
			)
			res.Inserted++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Duration = time.Since(start)
	p.log.Info("seeding completed",
		slog.Int("inserted", res.Inserted),
		slog.Bool("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func ptr(s string) *string { return &s }

// Roster returns the eight demo participants, Alice first.
func Roster() []domain.NewParticipant {
	return []domain.NewParticipant{
		{
			Name: "Alice Johnson", Email: "alice@test.com", Role: domain.RoleHost,
			Online: true, MicOn: true, CameraOn: true,
			AboutMe:   ptr("Product manager hosting today's sync. Keeps the agenda moving."),
			ResumeURL: ptr("https://example.com/resumes/alice.pdf"),
		},
		{
			Name: "Bob Smith", Email: "bob@test.com", Role: domain.RoleGuest,
			Online: false, MicOn: false, CameraOn: true,
			AboutMe:   ptr("Backend engineer focused on APIs and data pipelines."),
			ResumeURL: ptr("https://example.com/resumes/bob.pdf"),
		},
		{
			Name: "Carol White", Email: "carol@test.com", Role: domain.RoleGuest,
			Online: true, MicOn: true, CameraOn: false,
			AboutMe: ptr("UX designer who sketches flows before anyone writes code."),
		},
		{
			Name: "David Brown", Email: "david@test.com", Role: domain.RoleGuest,
			Online: false, MicOn: false, CameraOn: false,
			AboutMe: ptr("QA lead. Breaks things so customers don't have to."),
		},
		{
			Name: "Eva Green", Email: "eva@test.com", Role: domain.RoleGuest,
			Online: true, MicOn: true, CameraOn: true,
			AboutMe:   ptr("Frontend developer working on the call UI."),
			ResumeURL: ptr("https://example.com/resumes/eva.pdf"),
		},
		{
			Name: "Frank Miller", Email: "frank@test.com", Role: domain.RoleGuest,
			Online: true, MicOn: false, CameraOn: true,
			AboutMe: ptr("DevOps engineer keeping the media servers healthy."),
		},
		{
			Name: "Grace Lee", Email: "grace@test.com", Role: domain.RoleGuest,
			Online: false, MicOn: true, CameraOn: false,
			AboutMe:   ptr("Data analyst tracking call quality metrics."),
			ResumeURL: ptr("https://example.com/resumes/grace.pdf"),
		},
		{
			Name: "Henry Adams", Email: "henry@test.com", Role: domain.RoleGuest,
			Online: true, MicOn: true, CameraOn: true,
			AboutMe:   ptr("Mobile developer bringing calls to iOS and Android."),
			ResumeURL: ptr("https://example.com/resumes/henry.pdf"),
		},
	}
}
