// Package store provides a SQLite-backed cache for decoded usage records.
// The cache is keyed by source file path and invalidated by mtime/size, so
// deleting it only costs a re-decode on the next run.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"usagemark/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed record caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveRecord stores a decoded record and its file tracking info.
func (c *Cache) SaveRecord(path string, rec model.UsageRecord, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT OR REPLACE INTO records
		(file_path, total_cost, input_tokens, output_tokens, cache_creation, cache_read, decoded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		path, rec.TotalCost, rec.TotalInputTokens, rec.TotalOutputTokens,
		rec.TotalCacheCreationTokens, rec.TotalCacheReadTokens, now,
	)
	if err != nil {
		return err
	}

	// Replace old breakdown rows wholesale
	if _, err = tx.Exec("DELETE FROM record_models WHERE file_path = ?", path); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM record_days WHERE file_path = ?", path); err != nil {
		return err
	}

	for name, mu := range rec.ByModel {
		_, err = tx.Exec(`INSERT INTO record_models
			(file_path, model, cost, input_tokens, output_tokens)
			VALUES (?, ?, ?, ?, ?)`,
			path, name, mu.Cost, mu.InputTokens, mu.OutputTokens,
		)
		if err != nil {
			return err
		}
	}
	for day, du := range rec.ByDay {
		_, err = tx.Exec(`INSERT INTO record_days
			(file_path, day, cost, tokens)
			VALUES (?, ?, ?, ?)`,
			path, day, du.Cost, du.Tokens,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
		VALUES (?, ?, ?)`, path, mtimeNs, sizeBytes)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAllRecords reads all cached records keyed by source file path.
func (c *Cache) LoadAllRecords() (map[string]model.UsageRecord, error) {
	rows, err := c.db.Query(`SELECT
		file_path, total_cost, input_tokens, output_tokens, cache_creation, cache_read
		FROM records`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records := make(map[string]model.UsageRecord)
	for rows.Next() {
		var path string
		rec := model.NewUsageRecord()
		err := rows.Scan(&path, &rec.TotalCost, &rec.TotalInputTokens,
			&rec.TotalOutputTokens, &rec.TotalCacheCreationTokens, &rec.TotalCacheReadTokens)
		if err != nil {
			return nil, err
		}
		records[path] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	modelRows, err := c.db.Query(`SELECT file_path, model, cost, input_tokens, output_tokens FROM record_models`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = modelRows.Close() }()

	for modelRows.Next() {
		var path, name string
		var mu model.ModelUsage
		if err := modelRows.Scan(&path, &name, &mu.Cost, &mu.InputTokens, &mu.OutputTokens); err != nil {
			return nil, err
		}
		if rec, ok := records[path]; ok {
			rec.ByModel[name] = mu
		}
	}
	if err := modelRows.Err(); err != nil {
		return nil, err
	}

	dayRows, err := c.db.Query(`SELECT file_path, day, cost, tokens FROM record_days`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dayRows.Close() }()

	for dayRows.Next() {
		var path, day string
		var du model.DayUsage
		if err := dayRows.Scan(&path, &day, &du.Cost, &du.Tokens); err != nil {
			return nil, err
		}
		if rec, ok := records[path]; ok {
			rec.ByDay[day] = du
		}
	}

	return records, dayRows.Err()
}

// DeleteRecord removes a cached record and its file tracking entry.
func (c *Cache) DeleteRecord(path string) error {
	if _, err := c.db.Exec("DELETE FROM records WHERE file_path = ?", path); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", path)
	return err
}

// RecordCount returns the number of cached records.
func (c *Cache) RecordCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}
