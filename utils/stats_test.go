package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 2 {
		t.Errorf("after first update: %+v", s)
	}
	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Errorf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Error("zero duration overwrote the rate")
	}
	if s.TotalGenerations != 2 || s.ActiveCells != 200 || s.PeakPopulation != 200 {
		t.Errorf("counters = %+v", s)
	}
	s.Update(3, 50, 0)
	if s.PeakPopulation != 200 {
		t.Errorf("PeakPopulation = %d, want 200", s.PeakPopulation)
	}
}

func TestStatsFrameTime(t *testing.T) {
	s := NewStats()
	if got := s.AverageFrameTime(); got != 0 {
		t.Errorf("AverageFrameTime before any update = %v", got)
	}
	s.Update(1, 1, 10*time.Millisecond)
	s.Update(2, 1, 30*time.Millisecond)
	if got := s.AverageFrameTime(); got != 20*time.Millisecond {
		t.Errorf("AverageFrameTime = %v, want 20ms", got)
	}
}

func TestStatsString(t *testing.T) {
	s := NewStats()
	s.Update(4, 12, 0)
	s.RecordRestart()
	want := "gen 4, living 12 (peak 12, avg 12.0), 0.0 gen/sec, 1 restarts"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
