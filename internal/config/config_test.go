package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.PaceUnit != "min/km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "min/km")
	}
	if cfg.Workload.ChartWeeks != 12 {
		t.Errorf("Workload.ChartWeeks = %d, want 12", cfg.Workload.ChartWeeks)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "valid config",
			config: DefaultConfig(),
		},
		{
			name: "empty units are allowed - defaults apply on load",
			config: Config{
				Workload: WorkloadConfig{ChartWeeks: 8},
			},
		},
		{
			name: "miles config",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"},
			},
		},
		{
			name: "bad distance unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			expectError: true,
		},
		{
			name: "bad pace unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "km", PaceUnit: "min/furlong"},
			},
			expectError: true,
		},
		{
			name: "negative chart weeks",
			config: Config{
				Workload: WorkloadConfig{ChartWeeks: -1},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
