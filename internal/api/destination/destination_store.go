package destination

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hsm-gustavo/bucketlist/internal/db"
)

// ErrNotFound means the row does not exist or belongs to another user.
var ErrNotFound = errors.New("destination not found")

// Input is a validated create/update payload.
type Input struct {
	Destination string
	Country     string
	Notes       string
	Priority    db.Priority
	Visited     bool
}

// Store scopes every operation to userID.
type Store interface {
	List(ctx context.Context, userID int64) ([]db.Destination, error)
	Create(ctx context.Context, userID int64, in Input) (*db.Destination, error)
	Update(ctx context.Context, userID, id int64, in Input) (*db.Destination, error)
	Delete(ctx context.Context, userID, id int64) error
	ToggleVisited(ctx context.Context, userID, id int64) (*db.Destination, error)
}

const destinationColumns = "id, user_id, destination, country, notes, priority, visited, created_at, updated_at"

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDestination(row scanner) (*db.Destination, error) {
	var d db.Destination
	err := row.Scan(&d.ID, &d.UserID, &d.Destination, &d.Country, &d.Notes, &d.Priority, &d.Visited, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MySQLStore) List(ctx context.Context, userID int64) ([]db.Destination, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+destinationColumns+" FROM destinations WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	out := []db.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return out, nil
}

func (s *MySQLStore) Create(ctx context.Context, userID int64, in Input) (*db.Destination, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO destinations (user_id, destination, country, notes, priority, visited) VALUES (?, ?, ?, ?, ?, ?)",
		userID, in.Destination, in.Country, in.Notes, in.Priority, in.Visited)
	if err != nil {
		return nil, fmt.Errorf("insert destination: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert destination: %w", err)
	}
	return s.get(ctx, userID, id)
}

func (s *MySQLStore) Update(ctx context.Context, userID, id int64, in Input) (*db.Destination, error) {
	if _, err := s.visited(ctx, userID, id); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE destinations SET destination = ?, country = ?, notes = ?, priority = ?, visited = ? WHERE id = ? AND user_id = ?",
		in.Destination, in.Country, in.Notes, in.Priority, in.Visited, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update destination: %w", err)
	}
	return s.get(ctx, userID, id)
}

func (s *MySQLStore) Delete(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM destinations WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQLStore) ToggleVisited(ctx context.Context, userID, id int64) (*db.Destination, error) {
	visited, err := s.visited(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE destinations SET visited = ? WHERE id = ? AND user_id = ?", !visited, id, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle visited: %w", err)
	}
	return s.get(ctx, userID, id)
}

// visited doubles as the ownership check for update and toggle.
func (s *MySQLStore) visited(ctx context.Context, userID, id int64) (bool, error) {
	var visited bool
	err := s.db.QueryRowContext(ctx,
		"SELECT visited FROM destinations WHERE id = ? AND user_id = ?", id, userID).Scan(&visited)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("find destination: %w", err)
	}
	return visited, nil
}

func (s *MySQLStore) get(ctx context.Context, userID, id int64) (*db.Destination, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+destinationColumns+" FROM destinations WHERE id = ? AND user_id = ?", id, userID)
	d, err := scanDestination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get destination: %w", err)
	}
	return d, nil
}
