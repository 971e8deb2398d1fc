package store

import (
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewTestStore()
	if err != nil {
		t.Fatalf("NewTestStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGetWeeklyLoads(t *testing.T) {
	s := newTestStore(t)

	for _, m := range []float64{10, 12, 15} {
		if _, err := s.AppendWeek(m); err != nil {
			t.Fatalf("AppendWeek(%v) error = %v", m, err)
		}
	}

	weeks, err := s.GetWeeklyLoads()
	if err != nil {
		t.Fatalf("GetWeeklyLoads() error = %v", err)
	}

	if len(weeks) != 3 {
		t.Fatalf("GetWeeklyLoads() returned %d weeks, want 3", len(weeks))
	}
	for i, want := range []float64{10, 12, 15} {
		if weeks[i].Position != i {
			t.Errorf("weeks[%d].Position = %d, want %d", i, weeks[i].Position, i)
		}
		if weeks[i].Mileage != want {
			t.Errorf("weeks[%d].Mileage = %v, want %v", i, weeks[i].Mileage, want)
		}
		if weeks[i].ACWR != nil {
			t.Errorf("weeks[%d].ACWR = %v, want nil before any compute", i, *weeks[i].ACWR)
		}
	}
}

func TestUpdateWeekMileage(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AppendWeek(10); err != nil {
		t.Fatalf("AppendWeek() error = %v", err)
	}

	if err := s.UpdateWeekMileage(0, 25); err != nil {
		t.Fatalf("UpdateWeekMileage() error = %v", err)
	}

	week, err := s.GetWeek(0)
	if err != nil {
		t.Fatalf("GetWeek() error = %v", err)
	}
	if week.Mileage != 25 {
		t.Errorf("Mileage = %v, want 25", week.Mileage)
	}

	if err := s.UpdateWeekMileage(99, 10); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("UpdateWeekMileage(99) error = %v, want ErrWeekNotFound", err)
	}
}

func TestDeleteWeekClosesGap(t *testing.T) {
	s := newTestStore(t)

	for _, m := range []float64{10, 20, 30} {
		if _, err := s.AppendWeek(m); err != nil {
			t.Fatalf("AppendWeek() error = %v", err)
		}
	}

	if err := s.DeleteWeek(1); err != nil {
		t.Fatalf("DeleteWeek() error = %v", err)
	}

	weeks, err := s.GetWeeklyLoads()
	if err != nil {
		t.Fatalf("GetWeeklyLoads() error = %v", err)
	}

	if len(weeks) != 2 {
		t.Fatalf("after delete, %d weeks remain, want 2", len(weeks))
	}
	if weeks[0].Mileage != 10 || weeks[1].Mileage != 30 {
		t.Errorf("remaining mileages = %v, %v, want 10, 30", weeks[0].Mileage, weeks[1].Mileage)
	}
	if weeks[1].Position != 1 {
		t.Errorf("weeks[1].Position = %d, want 1 (gap closed)", weeks[1].Position)
	}

	if err := s.DeleteWeek(5); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("DeleteWeek(5) error = %v, want ErrWeekNotFound", err)
	}
}

func TestReplaceWeeklyACWRs(t *testing.T) {
	s := newTestStore(t)

	for _, m := range []float64{10, 10, 10, 10} {
		if _, err := s.AppendWeek(m); err != nil {
			t.Fatalf("AppendWeek() error = %v", err)
		}
	}

	one := 1.0
	if err := s.ReplaceWeeklyACWRs([]*float64{nil, nil, nil, &one}); err != nil {
		t.Fatalf("ReplaceWeeklyACWRs() error = %v", err)
	}

	weeks, err := s.GetWeeklyLoads()
	if err != nil {
		t.Fatalf("GetWeeklyLoads() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if weeks[i].ACWR != nil {
			t.Errorf("weeks[%d].ACWR = %v, want nil", i, *weeks[i].ACWR)
		}
	}
	if weeks[3].ACWR == nil || *weeks[3].ACWR != 1.0 {
		t.Errorf("weeks[3].ACWR = %v, want 1.0", weeks[3].ACWR)
	}
}

func TestGetWeekNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetWeek(0); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("GetWeek(0) on empty store error = %v, want ErrWeekNotFound", err)
	}
}
