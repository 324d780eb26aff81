package metrics

import (
	"testing"
	"time"
)

func TestLatencyTracker(t *testing.T) {
	tr := NewLatencyTracker(4)

	if s := tr.Stats(); s.Samples != 0 || s.Count != 0 {
		t.Fatalf("empty tracker stats = %+v", s)
	}

	for i := 1; i <= 6; i++ {
		tr.Record(time.Duration(i)*time.Millisecond, i == 6)
	}

	s := tr.Stats()
	if s.Count != 6 || s.Failures != 1 {
		t.Errorf("Count/Failures = %d/%d, want 6/1", s.Count, s.Failures)
	}
	if s.Samples != 4 {
		t.Errorf("Samples = %d, want 4", s.Samples)
	}
	// window holds 3..6 ms
	if s.Max != 6*time.Millisecond {
		t.Errorf("Max = %v", s.Max)
	}
	if s.P50 != 4*time.Millisecond {
		t.Errorf("P50 = %v", s.P50)
	}
	if s.Avg != 4500*time.Microsecond {
		t.Errorf("Avg = %v", s.Avg)
	}
}

func TestAssessDBPoolHealth(t *testing.T) {
	tests := []struct {
		name  string
		stats DBPoolStats
		want  PoolHealthStatus
	}{
		{"unlimited", DBPoolStats{InUse: 50}, PoolHealthy},
		{"normal", DBPoolStats{InUse: 2, MaxOpenConnections: 10}, PoolHealthy},
		{"high", DBPoolStats{InUse: 8, MaxOpenConnections: 10}, PoolDegraded},
		{"exhausted", DBPoolStats{InUse: 10, MaxOpenConnections: 10}, PoolUnhealthy},
		{"waiting", DBPoolStats{InUse: 1, MaxOpenConnections: 10, WaitCount: 3, WaitDuration: 6 * time.Second}, PoolDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssessDBPoolHealth(tt.stats); got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestGetDBPoolStats_Nil(t *testing.T) {
	if s := GetDBPoolStats(nil); s != (DBPoolStats{}) {
		t.Errorf("GetDBPoolStats(nil) = %+v", s)
	}
}
