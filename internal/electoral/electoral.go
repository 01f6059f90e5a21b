// Package electoral projects national support onto a fixed battleground
// map of electoral votes. It is a presentation layer for the map panel and
// results screen: the projection never feeds back into simulation state,
// and the election itself is decided by national support.
package electoral

import (
	"sort"
)

// VotesToWin is the electoral-vote majority threshold.
const VotesToWin = 270

// LandslideMargin is the EV margin that counts as a landslide.
const LandslideMargin = 100

// Region is one winner-take-all slice of the map. Lean is the baseline
// support offset in percentage points favoring the first candidate.
type Region struct {
	Name   string
	Abbrev string
	Votes  int
	Lean   float64
}

// DefaultMap returns the stock battleground map: 14 regions, 538 votes.
func DefaultMap() []Region {
	return []Region{
		{Name: "California", Abbrev: "CA", Votes: 54, Lean: 10},
		{Name: "New York", Abbrev: "NY", Votes: 28, Lean: 8},
		{Name: "Illinois", Abbrev: "IL", Votes: 19, Lean: 7},
		{Name: "Blue Coalition", Abbrev: "BC", Votes: 127, Lean: 4},
		{Name: "Florida", Abbrev: "FL", Votes: 30, Lean: 0},
		{Name: "Pennsylvania", Abbrev: "PA", Votes: 19, Lean: 1},
		{Name: "Georgia", Abbrev: "GA", Votes: 16, Lean: -1},
		{Name: "Michigan", Abbrev: "MI", Votes: 15, Lean: 0.5},
		{Name: "Arizona", Abbrev: "AZ", Votes: 11, Lean: -0.5},
		{Name: "Wisconsin", Abbrev: "WI", Votes: 10, Lean: 0},
		{Name: "Ohio", Abbrev: "OH", Votes: 17, Lean: -4},
		{Name: "North Carolina", Abbrev: "NC", Votes: 16, Lean: -3},
		{Name: "Texas", Abbrev: "TX", Votes: 40, Lean: -6},
		{Name: "Red Coalition", Abbrev: "RC", Votes: 136, Lean: -10},
	}
}

// RegionResult is one region's projected two-way race.
type RegionResult struct {
	Region   Region
	SupportA float64
	SupportB float64
	// Winner is the projected name, or "" for an exact tie.
	Winner string
}

// Margin returns the projected margin favoring candidate A.
func (r RegionResult) Margin() float64 { return r.SupportA - r.SupportB }

// Competitive reports whether the projected race is within ten points.
func (r RegionResult) Competitive() bool {
	m := r.Margin()
	return m >= -10 && m <= 10
}

// Projection is the full projected map for a two-way race.
type Projection struct {
	NameA, NameB   string
	VotesA, VotesB int
	TossupVotes    int
	Regions        []RegionResult
}

// Leader returns the projected leader's name, or "" when tied.
func (p Projection) Leader() string {
	switch {
	case p.VotesA > p.VotesB:
		return p.NameA
	case p.VotesB > p.VotesA:
		return p.NameB
	default:
		return ""
	}
}

// Landslide reports whether the projected margin is a landslide.
func (p Projection) Landslide() bool {
	d := p.VotesA - p.VotesB
	return d >= LandslideMargin || d <= -LandslideMargin
}

// Project spreads the two candidates' national support across the map via
// each region's lean offset and allocates votes winner-take-all. Exactly
// tied regions go to the tossup bucket rather than either column.
func Project(regions []Region, nameA string, supportA float64, nameB string, supportB float64) Projection {
	p := Projection{NameA: nameA, NameB: nameB}
	for _, reg := range regions {
		rr := RegionResult{
			Region:   reg,
			SupportA: clampPct(supportA + reg.Lean),
			SupportB: clampPct(supportB - reg.Lean),
		}
		switch {
		case rr.SupportA > rr.SupportB:
			rr.Winner = nameA
			p.VotesA += reg.Votes
		case rr.SupportB > rr.SupportA:
			rr.Winner = nameB
			p.VotesB += reg.Votes
		default:
			p.TossupVotes += reg.Votes
		}
		p.Regions = append(p.Regions, rr)
	}
	return p
}

// PathToVictory lists the regions candidate A should flip to reach a
// majority, cheapest margins first weighted by vote value. Returns nil
// when A already projects to a majority.
func (p Projection) PathToVictory() []Region {
	if p.VotesA >= VotesToWin {
		return nil
	}

	type flip struct {
		region     Region
		efficiency float64
	}
	var flips []flip
	for _, rr := range p.Regions {
		if rr.Winner == p.NameA {
			continue
		}
		margin := -rr.Margin()
		if margin < 0.1 {
			margin = 0.1
		}
		flips = append(flips, flip{region: rr.Region, efficiency: float64(rr.Region.Votes) / margin})
	}
	sort.SliceStable(flips, func(i, j int) bool { return flips[i].efficiency > flips[j].efficiency })

	needed := VotesToWin - p.VotesA
	var path []Region
	for _, f := range flips {
		path = append(path, f.region)
		needed -= f.region.Votes
		if needed <= 0 {
			break
		}
	}
	return path
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
