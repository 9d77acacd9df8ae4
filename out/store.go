// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"fmt"

	"github.com/prklVIP/proteus/zone"
	_ "modernc.org/sqlite"
)

// schema of database with histories
const schema = `
	CREATE TABLE IF NOT EXISTS zone_stats (
		sim TEXT NOT NULL,
		zone INTEGER NOT NULL,
		type TEXT NOT NULL,
		tidx INTEGER NOT NULL,
		time REAL NOT NULL,
		npts INTEGER NOT NULL,
		phimin REAL NOT NULL,
		phimax REAL NOT NULL,
		umax REAL NOT NULL,
		umean REAL NOT NULL,
		PRIMARY KEY (sim, zone, tidx)
	);
`

// SaveHistory writes h into the sqlite database at path under simulation key
//  Note: previous results with the same key are replaced
func SaveHistory(path, key string, h *History) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err = db.Exec(schema); err != nil {
		return fmt.Errorf("creating zone_stats table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM zone_stats WHERE sim = ?`, key); err != nil {
		return fmt.Errorf("deleting old results of %q: %w", key, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO zone_stats
		(sim, zone, type, tidx, time, npts, phimin, phimax, umax, umean)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for id, series := range h.Results {
		for i, s := range series {
			if i >= len(h.Times) {
				break
			}
			_, err = stmt.Exec(key, id, s.Type.String(), i, h.Times[i],
				s.Npts, s.PhiMin, s.PhiMax, s.SpeedMax, s.SpeedMean)
			if err != nil {
				return fmt.Errorf("inserting zone %d at time index %d: %w", id, i, err)
			}
		}
	}
	return tx.Commit()
}

// LoadHistory reads the history of simulation key from the sqlite database at path
func LoadHistory(path, key string) (h *History, err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT zone, type, tidx, time, npts, phimin, phimax, umax, umean
		FROM zone_stats WHERE sim = ? ORDER BY tidx, zone`, key)
	if err != nil {
		return nil, fmt.Errorf("querying results of %q: %w", key, err)
	}
	defer rows.Close()

	h = NewHistory()
	for rows.Next() {
		var tidx int
		var t float64
		var typ string
		s := new(ZoneStats)
		if err = rows.Scan(&s.Id, &typ, &tidx, &t, &s.Npts, &s.PhiMin, &s.PhiMax, &s.SpeedMax, &s.SpeedMean); err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		s.Type, _ = zone.GetType(typ)
		if tidx == len(h.Times) {
			h.Times = append(h.Times, t)
		}
		h.Results[s.Id] = append(h.Results[s.Id], s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(h.Times) == 0 {
		return nil, fmt.Errorf("cannot find results of %q in %q", key, path)
	}
	return h, nil
}
