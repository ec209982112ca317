package database

import (
	"fmt"
	"time"
)

// Directions accepted by the conversions table.
const (
	DirectionToASCII   = "to_ascii"
	DirectionToUnicode = "to_unicode"
)

// ConversionRecord is one row of the conversion history.
type ConversionRecord struct {
	ID         int64
	Direction  string // "to_ascii" or "to_unicode"
	Input      string
	Output     string
	OK         bool
	Violations int
	DurationUS int64
	CreatedAt  time.Time
}

// Totals are aggregate counters over the whole history table.
type Totals struct {
	Conversions int64
	Failures    int64
}

// RecordConversion appends one conversion to the history.
func (db *DB) RecordConversion(rec ConversionRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO conversions (direction, input, output, ok, violations, duration_us)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.conn.Exec(query, rec.Direction, rec.Input, rec.Output, rec.OK, rec.Violations, rec.DurationUS)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	return nil
}

// RecentConversions returns the most recent conversions, newest first.
func (db *DB) RecentConversions(limit int) ([]ConversionRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `
		SELECT id, direction, input, output, ok, violations, duration_us, created_at
		FROM conversions
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	var records []ConversionRecord
	for rows.Next() {
		var r ConversionRecord
		if err := rows.Scan(&r.ID, &r.Direction, &r.Input, &r.Output, &r.OK, &r.Violations, &r.DurationUS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}

	return records, nil
}

// HistoryTotals returns aggregate counters over all recorded conversions.
func (db *DB) HistoryTotals() (Totals, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var t Totals
	query := `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END), 0)
		FROM conversions
	`
	if err := db.conn.QueryRow(query).Scan(&t.Conversions, &t.Failures); err != nil {
		return Totals{}, fmt.Errorf("failed to query history totals: %w", err)
	}

	return t, nil
}
