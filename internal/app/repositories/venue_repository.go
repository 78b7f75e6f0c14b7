package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examtable/internal/app/models"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVenueRepository creates a new VenueRepository
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new venue and fills in its assigned ID
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := r.sb.Insert("venues").
		Columns("name", "capacity").
		Values(venue.Name, venue.Capacity).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&venue.ID); err != nil {
		return fmt.Errorf("error creating venue: %w", err)
	}

	return nil
}

// GetAll retrieves all venues ordered by ID
func (r *VenueRepository) GetAll(ctx context.Context) ([]models.Venue, error) {
	query := r.sb.Select("id", "name", "capacity").
		From("venues").
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		venues = append(venues, v)
	}

	return venues, rows.Err()
}

// GetByID retrieves a venue by ID, returning (nil, nil) when absent
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	return scanVenue(r.db.QueryRow(ctx, `SELECT id, name, capacity FROM venues WHERE id = $1`, id))
}

// GetByIDTx is GetByID within an open transaction, so the venue read
// participates in the scheduling transaction's snapshot.
func (r *VenueRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*models.Venue, error) {
	return scanVenue(tx.QueryRow(ctx, `SELECT id, name, capacity FROM venues WHERE id = $1`, id))
}

func scanVenue(row pgx.Row) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &v, nil
}
