package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/support/model"
)

func TestCreateGetRoundTrip(t *testing.T) {
	s := NewUnitStore()
	created := s.Create("Prayer Team", "weekly intercession", []model.UnitMember{
		{UnitMemberName: "Grace", UnitMemberPhone: "0801", UnitMemberRole: model.UnitRoleHead},
	})

	got, err := s.Get(created.UnitID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UnitName != "Prayer Team" || len(got.UnitMembers) != 1 {
		t.Fatalf("unexpected unit: %+v", got)
	}
	if got.UnitMembers[0].UnitMemberRole != model.UnitRoleHead {
		t.Fatalf("role = %q, want head", got.UnitMembers[0].UnitMemberRole)
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	s := NewUnitStore()
	if _, err := s.Get(uuid.New()); err != ErrUnitNotFound {
		t.Fatalf("err = %v, want ErrUnitNotFound", err)
	}
}

func TestListSortsByName(t *testing.T) {
	s := NewUnitStore()
	s.Create("Zeta", "", nil)
	s.Create("alpha", "", nil)
	s.Create("Media", "", nil)

	got := s.List()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"alpha", "Media", "Zeta"}
	for i, u := range got {
		if u.UnitName != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, u.UnitName, want[i])
		}
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	s := NewUnitStore()
	created := s.Create("Ushers", "seating", nil)

	name := "Ushering"
	updated, err := s.Update(created.UnitID, &name, nil, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.UnitName != "Ushering" {
		t.Fatalf("name = %q, want Ushering", updated.UnitName)
	}
	if updated.UnitDescription != "seating" {
		t.Fatalf("description changed unexpectedly: %q", updated.UnitDescription)
	}
	if updated.UnitUpdatedAt == nil {
		t.Fatal("expected UnitUpdatedAt to be set")
	}
}

func TestUpdateReplacesRoster(t *testing.T) {
	s := NewUnitStore()
	created := s.Create("Choir", "", []model.UnitMember{
		{UnitMemberName: "Old Head", UnitMemberRole: model.UnitRoleHead},
	})

	roster := []model.UnitMember{
		{UnitMemberName: "New Head", UnitMemberRole: model.UnitRoleHead},
		{UnitMemberName: "Helper", UnitMemberRole: model.UnitRoleAssistant},
	}
	updated, err := s.Update(created.UnitID, nil, nil, roster)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.UnitMembers) != 2 || updated.UnitMembers[0].UnitMemberName != "New Head" {
		t.Fatalf("roster not replaced: %+v", updated.UnitMembers)
	}
}

func TestDeleteRemovesUnit(t *testing.T) {
	s := NewUnitStore()
	created := s.Create("Welfare", "", nil)

	if err := s.Delete(created.UnitID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(created.UnitID); err != ErrUnitNotFound {
		t.Fatalf("err = %v, want ErrUnitNotFound after delete", err)
	}
	if err := s.Delete(created.UnitID); err != ErrUnitNotFound {
		t.Fatalf("second delete err = %v, want ErrUnitNotFound", err)
	}
}

func TestReturnedSlicesDoNotAliasStore(t *testing.T) {
	s := NewUnitStore()
	created := s.Create("Tech", "", []model.UnitMember{
		{UnitMemberName: "A", UnitMemberRole: model.UnitRoleHead},
	})

	got, _ := s.Get(created.UnitID)
	got.UnitMembers[0].UnitMemberName = "mutated"

	again, _ := s.Get(created.UnitID)
	if again.UnitMembers[0].UnitMemberName != "A" {
		t.Fatal("store state leaked through returned slice")
	}
}

func TestConcurrentWritesDoNotRace(t *testing.T) {
	s := NewUnitStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := s.Create("Unit", "", nil)
			s.List()
			_ = s.Delete(u.UnitID)
		}()
	}
	wg.Wait()
	if n := len(s.List()); n != 0 {
		t.Fatalf("expected empty store, got %d units", n)
	}
}
