package predict

import "testing"

func TestRiskBandsMonotonic(t *testing.T) {
	bands := DefaultRiskBands()

	// Risk must never decrease as death probability rises
	order := map[RiskCategory]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}
	prev := RiskLow
	for p := 0.0; p <= 1.0; p += 0.01 {
		cat := bands.Categorize(p)
		if order[cat] < order[prev] {
			t.Fatalf("risk dropped from %s to %s at p_death=%v", prev, cat, p)
		}
		prev = cat
	}
}

func TestRiskBandsDefaults(t *testing.T) {
	bands := DefaultRiskBands()

	tests := []struct {
		pDeath float64
		want   RiskCategory
	}{
		{0.0, RiskLow},
		{0.29, RiskLow},
		{0.3, RiskMedium},
		{0.59, RiskMedium},
		{0.6, RiskHigh},
		{1.0, RiskHigh},
	}

	for _, tt := range tests {
		if got := bands.Categorize(tt.pDeath); got != tt.want {
			t.Errorf("Categorize(%v) = %s, want %s", tt.pDeath, got, tt.want)
		}
	}
}

func TestRiskBandsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bands   RiskBands
		wantErr bool
	}{
		{"defaults", DefaultRiskBands(), false},
		{"inverted", RiskBands{LowMax: 0.6, MediumMax: 0.3}, true},
		{"zero low", RiskBands{LowMax: 0, MediumMax: 0.5}, true},
		{"above one", RiskBands{LowMax: 0.3, MediumMax: 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bands.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResponseBandsDefaults(t *testing.T) {
	bands := DefaultResponseBands()

	tests := []struct {
		p    float64
		want string
	}{
		{0.2, ResponseNone},
		{0.5, ResponseNone},
		{0.51, ResponsePartial},
		{0.8, ResponsePartial},
		{0.81, ResponseComplete},
	}

	for _, tt := range tests {
		if got := bands.Categorize(tt.p); got != tt.want {
			t.Errorf("Categorize(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestResponseBandsValidate(t *testing.T) {
	if err := DefaultResponseBands().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if err := (ResponseBands{CompleteMin: 0.4, PartialMin: 0.6}).Validate(); err == nil {
		t.Error("inverted bands should not validate")
	}
}
