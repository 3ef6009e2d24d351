package utils

import (
	"fmt"
	"time"
)

// Stats tracks frame rate and population over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	ActiveCells          int
	Restarts             int
	StartTime            time.Time
	frameTime            time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration and left population cells alive
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.frameTime += duration
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordRestart counts a reseed of the board
func (s *Stats) RecordRestart() {
	s.Restarts++
}

// Runtime is the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// AverageFrameTime is the mean time spent computing and painting a generation
func (s *Stats) AverageFrameTime() time.Duration {
	if s.TotalGenerations == 0 {
		return 0
	}
	return s.frameTime / time.Duration(s.TotalGenerations)
}

func (s *Stats) String() string {
	return fmt.Sprintf("gen %d, living %d (peak %d, avg %.1f), %.1f gen/sec, %d restarts",
		s.TotalGenerations, s.ActiveCells, s.PeakPopulation, s.AveragePopulation,
		s.GenerationsPerSecond, s.Restarts)
}
