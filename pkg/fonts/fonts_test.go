package fonts

import "testing"

func TestNewFace(t *testing.T) {
	variants := []struct {
		name         string
		bold, italic bool
	}{
		{"regular", false, false},
		{"bold", true, false},
		{"italic", false, true},
		{"bold italic", true, true},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			face, err := NewFace(10, 300, v.bold, v.italic)
			if err != nil {
				t.Fatalf("NewFace() error = %v", err)
			}
			defer face.Close()

			if face.Metrics().Ascent <= 0 {
				t.Error("face has non-positive ascent")
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	m, err := Measure("AuditFile", 10, false, false)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if m.Width <= 0 {
		t.Errorf("Width = %v, want > 0", m.Width)
	}
	if m.Height() <= 0 {
		t.Errorf("Height() = %v, want > 0", m.Height())
	}

	// More text measures wider.
	longer, err := Measure("DatabaseAuditWriter", 10, false, false)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if longer.Width <= m.Width {
		t.Errorf("longer text width %v <= shorter text width %v", longer.Width, m.Width)
	}

	// Larger size measures taller.
	big, err := Measure("AuditFile", 18, false, false)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if big.Height() <= m.Height() {
		t.Errorf("18pt height %v <= 10pt height %v", big.Height(), m.Height())
	}
}

func TestMeasureEmptyString(t *testing.T) {
	m, err := Measure("", 10, false, false)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.Width != 0 {
		t.Errorf("empty string Width = %v, want 0", m.Width)
	}
}
