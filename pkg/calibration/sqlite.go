// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calibration

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// SQLiteHistory keeps every persisted snapshot in an append-only SQLite table.
// Load returns the most recent one.
type SQLiteHistory struct {
	db *sql.DB
}

// NewSQLiteHistory opens (and creates when needed) the history database at path.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "cannot create directory for %q", path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open sqlite database %q", path)
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS snapshots (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  saved_at TEXT NOT NULL,
  note TEXT NOT NULL,
  body BLOB NOT NULL
);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot create snapshots table")
	}
	return &SQLiteHistory{db: db}, nil
}

// Persist appends snapshot to the history.
func (h *SQLiteHistory) Persist(snapshot Snapshot) error {
	body, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	_, err = h.db.Exec(`INSERT INTO snapshots (saved_at, note, body) VALUES (?, ?, ?)`,
		snapshot.SavedAt.UTC().Format(time.RFC3339Nano), snapshot.Note, body)
	return errors.Wrapf(err, "cannot insert calibration snapshot %q", snapshot.Note)
}

// Load returns the latest snapshot.
func (h *SQLiteHistory) Load() (Snapshot, error) {
	var body []byte
	err := h.db.QueryRow(`SELECT body FROM snapshots ORDER BY id DESC LIMIT 1`).Scan(&body)
	if err == sql.ErrNoRows {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "cannot query latest calibration snapshot")
	}
	return decodeSnapshot(body)
}

// History returns up to limit most recent snapshots, newest first.
func (h *SQLiteHistory) History(limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := h.db.Query(`SELECT body FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "cannot query calibration history")
	}
	defer rows.Close()

	snapshots := []Snapshot{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, errors.Wrap(err, "cannot scan calibration snapshot")
		}
		snapshot, err := decodeSnapshot(body)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, errors.Wrap(rows.Err(), "cannot iterate calibration history")
}

// Close releases the database handle.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}
