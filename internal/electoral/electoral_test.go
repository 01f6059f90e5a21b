package electoral

import "testing"

func TestDefaultMapTotals(t *testing.T) {
	total := 0
	for _, r := range DefaultMap() {
		total += r.Votes
	}
	if total != 538 {
		t.Errorf("expected 538 electoral votes, got %d", total)
	}
}

func TestProjectAllocatesEveryVote(t *testing.T) {
	p := Project(DefaultMap(), "Vega", 46, "Cruz", 44)

	if got := p.VotesA + p.VotesB + p.TossupVotes; got != 538 {
		t.Errorf("votes lost in projection: %d", got)
	}
	if len(p.Regions) != len(DefaultMap()) {
		t.Errorf("expected %d region results, got %d", len(DefaultMap()), len(p.Regions))
	}
}

func TestProjectFollowsLeans(t *testing.T) {
	// Dead-even national race: leans decide every region.
	p := Project(DefaultMap(), "Vega", 45, "Cruz", 45)

	for _, rr := range p.Regions {
		switch {
		case rr.Region.Lean > 0 && rr.Winner != "Vega":
			t.Errorf("%s leans Vega but projected %q", rr.Region.Abbrev, rr.Winner)
		case rr.Region.Lean < 0 && rr.Winner != "Cruz":
			t.Errorf("%s leans Cruz but projected %q", rr.Region.Abbrev, rr.Winner)
		case rr.Region.Lean == 0 && rr.Winner != "":
			t.Errorf("%s is a pure tossup but projected %q", rr.Region.Abbrev, rr.Winner)
		}
	}
}

func TestBlowoutIsLandslide(t *testing.T) {
	p := Project(DefaultMap(), "Vega", 60, "Cruz", 30)

	if p.Leader() != "Vega" {
		t.Fatalf("expected Vega to lead, got %q", p.Leader())
	}
	if !p.Landslide() {
		t.Errorf("30-point national lead should project a landslide: %d-%d", p.VotesA, p.VotesB)
	}
	if p.PathToVictory() != nil {
		t.Error("winner should have no path to victory to walk")
	}
}

func TestPathToVictoryCoversGap(t *testing.T) {
	p := Project(DefaultMap(), "Vega", 40, "Cruz", 50)

	path := p.PathToVictory()
	if len(path) == 0 {
		t.Fatal("trailing candidate should have flips to make")
	}
	votes := p.VotesA
	for _, r := range path {
		votes += r.Votes
	}
	if votes < VotesToWin {
		t.Errorf("path only reaches %d votes", votes)
	}
}
