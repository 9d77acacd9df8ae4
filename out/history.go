// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// History holds the statistics of zones along time
type History struct {
	Times   []float64            // output times
	Results map[int][]*ZoneStats // maps zone id to statistics at each output time
}

// NewHistory returns a new History
func NewHistory() *History {
	return &History{Results: make(map[int][]*ZoneStats)}
}

// Record appends statistics computed at time t
func (o *History) Record(t float64, stats []*ZoneStats) {
	o.Times = append(o.Times, t)
	for _, s := range stats {
		o.Results[s.Id] = append(o.Results[s.Id], s)
	}
}

// GetRes returns the time series of a result of zone id
//  key  -- see ResKeys
//  idxI -- index in Times of selected output time; use -1 for the whole series
func (o *History) GetRes(key string, id, idxI int) (res []float64) {
	series := o.Results[id]
	if idxI >= 0 {
		if idxI < len(series) {
			return []float64{series[idxI].Get(key)}
		}
		return nil
	}
	res = make([]float64, len(series))
	for i, s := range series {
		res[i] = s.Get(key)
	}
	return
}
