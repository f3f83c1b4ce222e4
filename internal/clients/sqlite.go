package clients

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a SQLite-backed store.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL mode for better concurrency. The modernc driver wants each
	// pragma wrapped in _pragma=.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		weight REAL,
		height REAL,
		goals TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name);

	CREATE TABLE IF NOT EXISTS training_plans (
		id TEXT PRIMARY KEY,
		difficulty TEXT NOT NULL,
		mode TEXT NOT NULL,
		num_people INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		target_user TEXT,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Create(ctx context.Context, client *Client) (*Client, error) {
	c := *client
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, age, weight, height, goals, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Age, c.Weight, c.Height, c.Goals, c.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return &c, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]*Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, weight, height, goals, created_at
		 FROM clients ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *SQLiteStore) GetByName(ctx context.Context, name string) (*Client, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, weight, height, goals, created_at
		 FROM clients
		 WHERE instr(lower(name), lower(?)) > 0
		 ORDER BY created_at ASC LIMIT 1`, name)

	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) DeleteByName(ctx context.Context, name string) (*Client, error) {
	client, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, client.ID); err != nil {
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return client, nil
}

func (s *SQLiteStore) SavePlan(ctx context.Context, plan *TrainingPlan) (*TrainingPlan, error) {
	p := *plan
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO training_plans (id, difficulty, mode, num_people, duration, target_user, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Difficulty, p.Mode, p.NumPeople, p.Duration, p.TargetUser, p.Content, p.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert training plan: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) ListPlans(ctx context.Context) ([]*TrainingPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, difficulty, mode, num_people, duration, target_user, content, created_at
		 FROM training_plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query training plans: %w", err)
	}
	defer rows.Close()

	var plans []*TrainingPlan
	for rows.Next() {
		var p TrainingPlan
		var target sql.NullString
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Difficulty, &p.Mode, &p.NumPeople, &p.Duration, &target, &p.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan training plan: %w", err)
		}
		p.TargetUser = target.String
		p.CreatedAt = time.Unix(createdAt, 0)
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*Client, error) {
	var c Client
	var age sql.NullInt64
	var weight, height sql.NullFloat64
	var goals sql.NullString
	var createdAt int64

	if err := row.Scan(&c.ID, &c.Name, &age, &weight, &height, &goals, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan client row: %w", err)
	}

	c.Age = int(age.Int64)
	c.Weight = weight.Float64
	c.Height = height.Float64
	c.Goals = goals.String
	c.CreatedAt = time.Unix(createdAt, 0)
	return &c, nil
}
