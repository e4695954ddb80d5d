// Package participant implements the participant repository on PostgreSQL.
// Reads are built with squirrel and scanned with scany; every mutation is a
// single UPDATE ... RETURNING that touches one flag, so concurrent writers to
// different flags of the same row never overwrite each other.
package participant

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/taneeshamadhu18/video-call-assignment/internal/adapter/postgres"
	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

const (
	table  = "participants"
	entity = "participant"
)

var columns = []string{
	"id", "name", "email", "role", "avatar", "online", "mic_on", "camera_on",
	"about_me", "resume_url", "created_at", "updated_at",
}

// bumpUpdatedAt keeps updated_at strictly increasing even when two writes land
// within the same clock tick.
const bumpUpdatedAt = "GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new participant repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Avatar    *string   `db:"avatar"`
	Online    bool      `db:"online"`
	MicOn     bool      `db:"mic_on"`
	CameraOn  bool      `db:"camera_on"`
	AboutMe   *string   `db:"about_me"`
	ResumeURL *string   `db:"resume_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Participant {
	return domain.Participant{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      domain.Role(r.Role),
		Avatar:    r.Avatar,
		Online:    r.Online,
		MicOn:     r.MicOn,
		CameraOn:  r.CameraOn,
		AboutMe:   r.AboutMe,
		ResumeURL: r.ResumeURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// List returns at most filter.Limit participants matching filter.Search,
// ordered by id, skipping filter.Offset rows. No match yields an empty slice.
func (r *Repo) List(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	query := psql.Select(columns...).
		From(table).
		Where(searchPredicate(filter.Search)).
		OrderBy("id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	out := make([]domain.Participant, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Count returns how many participants match search, ignoring paging.
func (r *Repo) Count(ctx context.Context, search string) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").
		From(table).
		Where(searchPredicate(search)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return total, nil
}

// GetByID returns one participant or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	p := rw.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetMicrophone writes mic_on only.
func (r *Repo) SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	return r.update(ctx, id, map[string]any{"mic_on": on})
}

// SetCamera writes camera_on only.
func (r *Repo) SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	return r.update(ctx, id, map[string]any{"camera_on": on})
}

// SetOnline writes online only.
func (r *Repo) SetOnline(ctx context.Context, id int64, online bool) (*domain.Participant, error) {
	return r.update(ctx, id, map[string]any{"online": online})
}

// SetMedia writes mic_on and camera_on together.
func (r *Repo) SetMedia(ctx context.Context, id int64, micOn, cameraOn bool) (*domain.Participant, error) {
	return r.update(ctx, id, map[string]any{"mic_on": micOn, "camera_on": cameraOn})
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) (*domain.Participant, error) {
	sqlStr, args, err := psql.Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr(bumpUpdatedAt)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	p := rw.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Provisioning
// ---------------------------------------------------------------------------

// Create inserts a participant. Used by the seeder and fixtures; the HTTP API
// never creates participants.
func (r *Repo) Create(ctx context.Context, in domain.NewParticipant) (*domain.Participant, error) {
	sqlStr, args, err := psql.Insert(table).
		Columns("name", "email", "role", "avatar", "online", "mic_on", "camera_on", "about_me", "resume_url").
		Values(in.Name, in.Email, string(in.Role), in.Avatar, in.Online, in.MicOn, in.CameraOn, in.AboutMe, in.ResumeURL).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	p := rw.toDomain()
	return &p, nil
}

// DeleteAll empties the table and restarts the id sequence. Seeder only.
func (r *Repo) DeleteAll(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "TRUNCATE "+table+" RESTART IDENTITY"); err != nil {
		return fmt.Errorf("truncate participants: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPredicate matches name, email or role case-insensitively. LIKE
// wildcards typed by the user are matched literally.
func searchPredicate(search string) sq.Sqlizer {
	search = strings.TrimSpace(search)
	if search == "" {
		return sq.Expr("TRUE")
	}
	pattern := "%" + likeEscaper.Replace(search) + "%"
	return sq.Or{
		sq.ILike{"name": pattern},
		sq.ILike{"email": pattern},
		sq.ILike{"role": pattern},
	}
}
