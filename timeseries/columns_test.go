package timeseries

import "testing"

func TestPairMetricColumns(t *testing.T) {
	columns := []string{
		"average_value_School enrollment, secondary, female (% gross)",
		"average_value_Fertility rate, total (births per woman)",
		"average_value_School enrollment, secondary, male (% gross)",
		"average_value_Repeaters, primary, female (% of female enrollment)",
		"average_value_Repeaters, primary, male (% of male enrollment)",
	}

	pairs, singles := PairMetricColumns(columns)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d: %+v", len(pairs), pairs)
	}
	p := pairs[0]
	if p.Label != "School enrollment, secondary" {
		t.Errorf("Unexpected label %q", p.Label)
	}
	if p.ID != "school-enrollment,-secondary" {
		t.Errorf("Unexpected id %q", p.ID)
	}
	if p.Male != columns[2] {
		t.Errorf("Unexpected male column %q", p.Male)
	}

	// Only the first "female" is swapped, so the repeaters columns stay unpaired.
	if len(singles) != 3 {
		t.Fatalf("Expected 3 singles, got %d: %+v", len(singles), singles)
	}
	if singles[0].Label != "Fertility rate, total (births per woman)" {
		t.Errorf("Unexpected single label %q", singles[0].Label)
	}
}
