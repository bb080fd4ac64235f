package datagen

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.00 TB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestProgressReporter(t *testing.T) {
	p := NewProgressReporter("sales_transactions", 25, 10)
	for i := 0; i < 25; i++ {
		p.Update(1)
	}
	if p.Rows() != 25 {
		t.Errorf("Rows() = %d, want 25", p.Rows())
	}
	p.Done()
}

func TestProgressReporterZeroInterval(t *testing.T) {
	// A zero interval must not divide by zero.
	p := NewProgressReporter("categories", 0, 0)
	p.Update(3)
	if p.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", p.Rows())
	}
}
