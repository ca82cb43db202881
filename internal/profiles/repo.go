package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/internal/units"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Unit == "" {
		profile.Unit = units.Kilograms
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO profile
				(id, username, full_name, unit, password_hash)
				VALUES ($1, $2, $3, $4, $5);`,
		profile.ID, profile.Username, profile.FullName, string(profile.Unit), profile.PasswordHash,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("profile.id", profile.ID))

	return &profile, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return r.getWhere(ctx, `id = $1`, id)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getWhere(ctx, `username = $1`, username)
}

func (r *Repo) Update(ctx context.Context, profile *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", profile.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET full_name = $1, unit = $2 WHERE id = $3;`,
		profile.FullName, string(profile.Unit), profile.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *Repo) getWhere(ctx context.Context, where string, arg any) (*Profile, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, full_name, unit, password_hash FROM profile WHERE `+where+`;`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}

	if len(profiles) != 1 {
		return nil, ErrProfileNotFound
	}

	return &profiles[0], nil
}

func (r *Repo) rows2profiles(rows pgx.Rows) ([]Profile, error) {
	var profiles []Profile
	for rows.Next() {
		var profile Profile
		var unit string
		if err := rows.Scan(
			&profile.ID,
			&profile.Username,
			&profile.FullName,
			&unit,
			&profile.PasswordHash,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		u, err := units.Parse(unit)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", profile.ID, err)
		}
		profile.Unit = u
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
