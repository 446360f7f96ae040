package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	"github.com/pulseboard/pulseboard-api/internal/domain/repository"
)

type ClubRepository struct {
	pool *pgxpool.Pool
}

func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

func (r *ClubRepository) Create(ctx context.Context, c *entity.Club) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clubs (club_id, name, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, follower_count, created_at, updated_at
	`, c.ClubID, c.Name, c.Description, c.Category)

	if err := row.Scan(&c.ID, &c.FollowerCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if pgErr.ConstraintName == "clubs_club_id_key" {
				return repository.ErrDuplicateClub
			}
			return repository.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *ClubRepository) GetByClubID(ctx context.Context, clubID int64) (*entity.Club, error) {
	c := &entity.Club{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, club_id, name, description, category, follower_count, created_at, updated_at
		FROM clubs
		WHERE club_id = $1
	`, clubID)

	if err := row.Scan(&c.ID, &c.ClubID, &c.Name, &c.Description, &c.Category,
		&c.FollowerCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrClubNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]*entity.Club, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, club_id, name, description, category, follower_count, created_at, updated_at
		FROM clubs
		ORDER BY club_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]*entity.Club, 0)
	for rows.Next() {
		c := &entity.Club{}
		if err := rows.Scan(&c.ID, &c.ClubID, &c.Name, &c.Description, &c.Category,
			&c.FollowerCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// ToggleFollow flips the membership bit and adjusts follower_count in one
// transaction. The count moves only when the user_follows row actually
// changed (DELETE removed a row / INSERT inserted one), so a retried or
// concurrent toggle can never double-count. The UPDATE on the club row takes
// a row lock, serializing concurrent toggles for the same club.
func (r *ClubRepository) ToggleFollow(ctx context.Context, userID string, clubID int64) ([]int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clubs WHERE club_id = $1)`, clubID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrClubNotFound
	}

	res, err := tx.Exec(ctx, `
		DELETE FROM user_follows WHERE user_id = $1 AND club_id = $2
	`, userID, clubID)
	if err != nil {
		return nil, err
	}

	if res.RowsAffected() > 0 {
		// Was following: count down, floored at zero.
		if _, err := tx.Exec(ctx, `
			UPDATE clubs SET follower_count = GREATEST(follower_count - 1, 0), updated_at = now()
			WHERE club_id = $1
		`, clubID); err != nil {
			return nil, err
		}
	} else {
		ins, err := tx.Exec(ctx, `
			INSERT INTO user_follows (user_id, club_id) VALUES ($1, $2)
			ON CONFLICT (user_id, club_id) DO NOTHING
		`, userID, clubID)
		if err != nil {
			return nil, err
		}
		if ins.RowsAffected() > 0 {
			if _, err := tx.Exec(ctx, `
				UPDATE clubs SET follower_count = follower_count + 1, updated_at = now()
				WHERE club_id = $1
			`, clubID); err != nil {
				return nil, err
			}
		}
	}

	rows, err := tx.Query(ctx, `
		SELECT club_id FROM user_follows WHERE user_id = $1 ORDER BY club_id
	`, userID)
	if err != nil {
		return nil, err
	}
	following := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		following = append(following, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return following, nil
}

var _ repository.ClubRepository = (*ClubRepository)(nil)
