package transcript

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/jdmills/campaigncraft/internal/campaign"
	"github.com/jdmills/campaigncraft/internal/sim"
)

func sampleHistory() ([]sim.Turn, *sim.Result) {
	standings := []sim.Standing{
		{Name: "Vega", Funds: 12, Staff: 3, Energy: 70, Support: 47.2, Momentum: 8},
		{Name: "Cruz", Funds: 9, Staff: 3, Energy: 60, Support: 42.8, Momentum: -3},
	}
	history := []sim.Turn{
		{Index: 1, Player: campaign.Outcome{Actor: "Vega", Action: campaign.Fundraise()}, Standings: standings},
		{Index: 2, Player: campaign.Outcome{Actor: "Vega", Action: campaign.Advertise(3)}, Standings: standings},
	}
	result := &sim.Result{Winner: "Vega", Standings: standings}
	return history, result
}

func TestSaveAndLoadRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	history, result := sampleHistory()
	id := uuid.New()

	if err := store.SaveRun(id, 42, "Vega", history, result); err != nil {
		t.Fatalf("save: %v", err)
	}

	run, turns, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if run.Seed != 42 || run.Player != "Vega" || run.Winner != "Vega" {
		t.Errorf("run fields: %+v", run)
	}
	if run.Turns != 2 || len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d / %d", run.Turns, len(turns))
	}
	if turns[0].PlayerAction != "Fundraise" {
		t.Errorf("turn 1 action: %q", turns[0].PlayerAction)
	}
	if turns[1].PlayerAction != "Advertise($3)" {
		t.Errorf("turn 2 action: %q", turns[1].PlayerAction)
	}
	if len(turns[0].Standings) != 2 {
		t.Errorf("turn snapshot lost: %+v", turns[0])
	}
}

func TestSaveRejectsUnfinishedRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	history, _ := sampleHistory()
	if err := store.SaveRun(uuid.New(), 1, "Vega", history, nil); err == nil {
		t.Error("expected error saving a run without a result")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	history, result := sampleHistory()
	for i := 0; i < 3; i++ {
		if err := store.SaveRun(uuid.New(), int64(i), "Vega", history, result); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}

	missing, _, err := store.LoadRun(uuid.New())
	if err == nil || missing != nil {
		t.Error("expected error loading unknown run")
	}
}
