// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prklVIP/proteus/zone"
)

func newHistory() *History {
	h := NewHistory()
	h.Record(0, []*ZoneStats{
		{Id: 1, Type: zone.Absorption, Npts: 4, PhiMin: -1, PhiMax: 1},
		{Id: 2, Type: zone.Generation, Npts: 2, PhiMin: 0.5, PhiMax: 0.5, SpeedMax: 5, SpeedMean: 5},
	})
	h.Record(0.5, []*ZoneStats{
		{Id: 1, Type: zone.Absorption, Npts: 4, PhiMin: -1, PhiMax: 1},
		{Id: 2, Type: zone.Generation, Npts: 2, PhiMin: 0.5, PhiMax: 0.5, SpeedMax: 6, SpeedMean: 4},
	})
	return h
}

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01")

	path := filepath.Join(tst.TempDir(), "results.db")
	h := newHistory()
	if err := SaveHistory(path, "flume", h); err != nil {
		tst.Fatalf("SaveHistory failed: %v\n", err)
	}

	// saving again replaces previous results
	if err := SaveHistory(path, "flume", h); err != nil {
		tst.Fatalf("SaveHistory failed: %v\n", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		tst.Fatalf("cannot open database: %v\n", err)
	}
	defer db.Close()
	var nrows int
	if err = db.QueryRow(`SELECT COUNT(*) FROM zone_stats WHERE sim = ?`, "flume").Scan(&nrows); err != nil {
		tst.Fatalf("cannot count rows: %v\n", err)
	}
	chk.Int(tst, "nrows", nrows, 4)

	// load
	r, err := LoadHistory(path, "flume")
	if err != nil {
		tst.Fatalf("LoadHistory failed: %v\n", err)
	}
	chk.Array(tst, "times", 1e-15, r.Times, []float64{0, 0.5})
	chk.Array(tst, "umax(2)", 1e-15, r.GetRes("umax", 2, -1), []float64{5, 6})
	chk.Array(tst, "umean(2)", 1e-15, r.GetRes("umean", 2, -1), []float64{5, 4})
	chk.Array(tst, "phimin(1)", 1e-15, r.GetRes("phimin", 1, -1), []float64{-1, -1})
	chk.Int(tst, "npts(1)", r.Results[1][1].Npts, 4)
	if r.Results[2][0].Type != zone.Generation {
		tst.Errorf("type of zone 2 should be generation; got %v\n", r.Results[2][0].Type)
	}

	// unknown key
	if _, err = LoadHistory(path, "basin"); err == nil {
		tst.Errorf("LoadHistory should have failed with unknown key\n")
	}
}
