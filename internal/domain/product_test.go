package domain

import "testing"

func TestComputeSustainabilityScore(t *testing.T) {
	tests := []struct {
		name            string
		carbonIntensity float64
		isOrganic       bool
		category        ProductCategory
		want            int
	}{
		{
			name:            "low carbon organic produce",
			carbonIntensity: 0.3,
			isOrganic:       true,
			category:        CategoryProduce,
			want:            100, // 50+30+15+10 clamped from 105
		},
		{
			name:            "mid carbon conventional produce",
			carbonIntensity: 2.1,
			isOrganic:       false,
			category:        CategoryProduce,
			want:            80, // 50+20+10
		},
		{
			name:            "high carbon electronics",
			carbonIntensity: 156.7,
			isOrganic:       false,
			category:        CategoryElectronics,
			want:            40, // 50-10
		},
		{
			name:            "carbon just under the five tier",
			carbonIntensity: 4.9,
			isOrganic:       false,
			category:        CategoryDairy,
			want:            60, // 50+10
		},
		{
			name:            "organic clothing above five",
			carbonIntensity: 5.1,
			isOrganic:       true,
			category:        CategoryClothing,
			want:            55, // 50-10+15
		},
		{
			name:            "zero carbon conventional grains",
			carbonIntensity: 0,
			isOrganic:       false,
			category:        CategoryGrains,
			want:            90, // 50+30+10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSustainabilityScore(tt.carbonIntensity, tt.isOrganic, tt.category)
			if got != tt.want {
				t.Errorf("ComputeSustainabilityScore() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0,100]", got)
			}

			// Derivation must be idempotent
			again := ComputeSustainabilityScore(tt.carbonIntensity, tt.isOrganic, tt.category)
			if again != got {
				t.Errorf("recomputation = %d, want %d", again, got)
			}
		})
	}
}

func TestProductRescore(t *testing.T) {
	p := Product{
		ID:              "p-1",
		Name:            "Test Product",
		CarbonIntensity: 0.5,
		IsOrganic:       true,
		Category:        CategoryProduce,
	}
	p.Rescore()
	if p.SustainabilityScore != 100 {
		t.Fatalf("SustainabilityScore = %d, want 100", p.SustainabilityScore)
	}

	// A cached score must not survive a mutation
	p.CarbonIntensity = 6.2
	p.IsOrganic = false
	p.Rescore()
	if p.SustainabilityScore != 50 {
		t.Errorf("SustainabilityScore after mutation = %d, want 50", p.SustainabilityScore)
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range AllCategories {
		if !category.IsValid() {
			t.Errorf("category %q should be valid", category)
		}
	}

	if ProductCategory("Software").IsValid() {
		t.Error("unknown category should be invalid")
	}
	if ProductCategory("").IsValid() {
		t.Error("empty category should be invalid")
	}
}
