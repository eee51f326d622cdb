package floor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const floorColumns = `id, name, image_url, points, walkable, sort_order, north_offset, created_at`

// PostgresStore keeps floors as rows of the floors table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with the given connection pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Backend implements Store.
func (s *PostgresStore) Backend() string { return "relational" }

// List returns all rows ordered by sort_order; id breaks ties because rows are
// inserted in submission order.
func (s *PostgresStore) List(ctx context.Context) ([]Floor, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+floorColumns+` FROM floors ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query floors: %w", err)
	}
	defer rows.Close()

	floors := make([]Floor, 0)
	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		floors = append(floors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate floors: %w", err)
	}
	return floors, nil
}

// Publish deletes every row and inserts floors inside one transaction.
// IDs and creation times are assigned by the database.
func (s *PostgresStore) Publish(ctx context.Context, floors []Floor) ([]Floor, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM floors`); err != nil {
		return nil, fmt.Errorf("clear floors: %w", err)
	}

	published := make([]Floor, 0, len(floors))
	for _, f := range floors {
		points, err := json.Marshal(f.Points)
		if err != nil {
			return nil, fmt.Errorf("encode points: %w", err)
		}
		walkable, err := json.Marshal(f.Walkable)
		if err != nil {
			return nil, fmt.Errorf("encode walkable: %w", err)
		}

		row := tx.QueryRow(ctx,
			`INSERT INTO floors (name, image_url, points, walkable, sort_order, north_offset)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+floorColumns,
			f.Name, f.ImageURL, points, walkable, f.SortOrder, f.NorthOffset,
		)
		inserted, err := scanFloor(row)
		if err != nil {
			return nil, fmt.Errorf("insert floor %q: %w", f.Name, err)
		}
		published = append(published, inserted)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit publish: %w", err)
	}

	SortFloors(published)
	return published, nil
}

// Delete removes the row whose numeric id matches. Ids that do not parse as
// integers are rejected before the database is touched; zero and negative ids
// simply match no row.
func (s *PostgresStore) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrInvalidID
	}

	row := s.db.QueryRow(ctx,
		`DELETE FROM floors WHERE id = $1 RETURNING `+floorColumns, n)
	f, err := scanFloor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete floor: %w", err)
	}
	return &DeleteResult{Floor: f}, nil
}

func scanFloor(row pgx.Row) (Floor, error) {
	var (
		f        Floor
		id       int64
		points   []byte
		walkable []byte
	)
	if err := row.Scan(&id, &f.Name, &f.ImageURL, &points, &walkable, &f.SortOrder, &f.NorthOffset, &f.CreatedAt); err != nil {
		return Floor{}, err
	}
	f.ID = strconv.FormatInt(id, 10)
	f.CreatedAt = f.CreatedAt.UTC()

	if err := json.Unmarshal(points, &f.Points); err != nil || f.Points == nil {
		f.Points = []any{}
	}
	f.Walkable = Walkable{Color: DefaultWalkableColor, Tolerance: DefaultWalkableTolerance}
	if len(walkable) > 0 {
		_ = json.Unmarshal(walkable, &f.Walkable)
	}
	return f, nil
}
