package repository

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	ListSeekersExcluding(ctx context.Context, excluded []uuid.UUID) ([]user.Profile, error)
	ListSeekerLocations(ctx context.Context) ([]string, error)
}

const profileColumns = `p.user_id, u.username, u.email, p.user_type, p.location,
	p.experience_years, p.skills, COALESCE(p.resume_path, ''), p.education`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1`,
		userID.String(),
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return p, nil
}

// ListSeekersExcluding returns seeker profiles ordered by user id, skipping
// the excluded users.
func (r *PostgresProfileRepository) ListSeekersExcluding(ctx context.Context, excluded []uuid.UUID) ([]user.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_type = $1
		   AND NOT (p.user_id = ANY($2::uuid[]))
		 ORDER BY p.user_id ASC`,
		user.TypeSeeker,
		uuidStrings(excluded),
	)
	if err != nil {
		return nil, fmt.Errorf("list seekers: %w", err)
	}
	return collectProfiles(rows)
}

// ListSeekerLocations returns the location of every seeker profile, one per
// profile, in user id order.
func (r *PostgresProfileRepository) ListSeekerLocations(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT location FROM profiles WHERE user_type = $1 ORDER BY user_id ASC`,
		user.TypeSeeker,
	)
	if err != nil {
		return nil, fmt.Errorf("list seeker locations: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(
		&p.UserID,
		&p.Username,
		&p.Email,
		&p.UserType,
		&p.Location,
		&p.ExperienceYears,
		&p.Skills,
		&p.ResumePath,
		&p.Education,
	)
	return p, err
}

func collectProfiles(rows database.Rows) ([]user.Profile, error) {
	defer rows.Close()

	out := make([]user.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
