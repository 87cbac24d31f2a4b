package store

import (
	"testing"

	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
)

func TestSaveListLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	m := plane.Mat2{A: 1, B: 0, C: 0, D: -1}
	p := orbit.NewPortrait(m, 20, 0.05)
	p.AddPoint(plane.Vec2{X: 1, Y: 1})
	p.AddPoint(plane.Vec2{X: -2, Y: 0.5})

	id, err := s.Save(p, 20, 0.05)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sessions, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ID != id {
		t.Errorf("expected id %s, got %s", id, sessions[0].ID)
	}
	if sessions[0].Classification != "Saddle Point" {
		t.Errorf("unexpected classification: %s", sessions[0].Classification)
	}

	meta, analysis, trajs, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Matrix != m {
		t.Errorf("matrix roundtrip: got %+v", meta.Matrix)
	}
	if string(analysis.Class) != meta.Classification {
		t.Error("recomputed analysis disagrees with stored classification")
	}
	if len(trajs) != 2 {
		t.Fatalf("expected 2 trajectories, got %d", len(trajs))
	}
	if len(trajs[0].Points) != len(p.Trajectories()[0].Points) {
		t.Errorf("trajectory 0 lost points: %d vs %d",
			len(trajs[0].Points), len(p.Trajectories()[0].Points))
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir() + "/missing")

	sessions, err := s.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, _, _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing session")
	}
}
