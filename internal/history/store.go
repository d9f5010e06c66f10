// Package history keeps a record of generated pick orders and the time
// taken to fill each box size.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/PickPack/internal/model"
	_ "modernc.org/sqlite"
)

// ErrOrderNotFound is returned by FindOrder for an unknown result ID.
var ErrOrderNotFound = errors.New("order not found")

const schema = `
	CREATE TABLE IF NOT EXISTS orders (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		result_id TEXT NOT NULL,
		box TEXT NOT NULL,
		items INTEGER NOT NULL,
		fillers INTEGER NOT NULL,
		efficiency DOUBLE NOT NULL,
		order_text TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS orders_result_id ON orders(result_id);
	CREATE TABLE IF NOT EXISTS fill_times (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		box TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
`

// Store persists generated orders and box fill times in sqlite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// OrderRecord is one stored pick order.
type OrderRecord struct {
	ResultID   string
	Box        model.BoxSize
	Items      int
	Fillers    int
	Efficiency float64
	Order      string
	CreatedAt  time.Time
}

// RecordOrder stores a placement result together with its serialized order.
func (s *Store) RecordOrder(result model.PlacementResult, order string) error {
	_, err := s.db.Exec(
		"INSERT INTO orders (result_id, box, items, fillers, efficiency, order_text, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		result.ID, string(result.Box), len(result.Placements), result.Fillers, result.Efficiency(),
		order, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record order %s: %w", result.ID, err)
	}
	return nil
}

// ListOrders returns up to limit orders, newest first. A limit of zero or
// less returns every order.
func (s *Store) ListOrders(limit int) ([]OrderRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		"SELECT result_id, box, items, fillers, efficiency, order_text, created_at FROM orders ORDER BY seq DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []OrderRecord
	for rows.Next() {
		rec, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// FindOrder returns the most recent order stored under resultID.
func (s *Store) FindOrder(resultID string) (OrderRecord, error) {
	row := s.db.QueryRow(
		"SELECT result_id, box, items, fillers, efficiency, order_text, created_at FROM orders WHERE result_id = ? ORDER BY seq DESC LIMIT 1",
		resultID,
	)
	rec, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderRecord{}, fmt.Errorf("%w: %s", ErrOrderNotFound, resultID)
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(r scanner) (OrderRecord, error) {
	var (
		rec     OrderRecord
		box     string
		created string
	)
	if err := r.Scan(&rec.ResultID, &box, &rec.Items, &rec.Fillers, &rec.Efficiency, &rec.Order, &created); err != nil {
		return OrderRecord{}, err
	}
	rec.Box = model.BoxSize(box)
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	rec.CreatedAt = t
	return rec, nil
}

// RecordFillTime stores how long it took to fill one box of the given size.
func (s *Store) RecordFillTime(box model.BoxSize, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("fill time must not be negative, got %s", d)
	}
	_, err := s.db.Exec(
		"INSERT INTO fill_times (box, duration_ms, created_at) VALUES (?, ?, ?)",
		string(box), d.Milliseconds(), s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record fill time: %w", err)
	}
	return nil
}

// FillTimes returns the latest limit fill times for box, oldest first.
func (s *Store) FillTimes(box model.BoxSize, limit int) ([]time.Duration, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		"SELECT duration_ms FROM (SELECT seq, duration_ms FROM fill_times WHERE box = ? ORDER BY seq DESC LIMIT ?) ORDER BY seq ASC",
		string(box), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Duration
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, err
		}
		out = append(out, time.Duration(ms)*time.Millisecond)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FillTimeBuffer loads the latest fill times for box into a ring buffer.
func (s *Store) FillTimeBuffer(box model.BoxSize, capacity int) (*FillTimeBuffer, error) {
	buf := NewFillTimeBuffer(capacity)
	times, err := s.FillTimes(box, buf.Cap())
	if err != nil {
		return nil, err
	}
	for _, d := range times {
		buf.Push(d)
	}
	return buf, nil
}
