package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{98, "USD", "$98"},
		{1234, "EUR", "€1,234"},
		{1234567.4, "GBP", "£1,234,567"},
		{89.6, "USD", "$90"},
		{250, "CHF", "CHF 250"},
		{-42, "USD", "-$42"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}
