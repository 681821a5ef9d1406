package core

import "testing"

func TestRay_At(t *testing.T) {
	ray := NewRayWithTime(NewVec3(1, 2, 3), NewVec3(0, 2, -1), 0.25)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"origin", 0, NewVec3(1, 2, 3)},
		{"forward", 1.5, NewVec3(1, 5, 1.5)},
		{"backward", -1, NewVec3(1, 0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ray.At(tt.t); got != tt.expected {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.expected)
			}
		})
	}

	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %v", ray.Time)
	}
	if NewRay(ray.Origin, ray.Direction).Time != 0 {
		t.Error("Expected NewRay to cast at time zero")
	}
}
