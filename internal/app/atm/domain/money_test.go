package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "100", want: "100.00"},
		{in: "0.01", want: "0.01"},
		{in: "12.345", want: "12.35"},
		{in: "0.005", want: "0.01"},
		{in: "0.004", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-100.0", wantErr: true},
		{in: "999999999999999.99", want: "999999999999999.99"},
		{in: "1000000000000000", wantErr: true},
		{in: "1e10000000", wantErr: true},
		{in: "1e-400", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeAmount(decimal.RequireFromString(tt.in))
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("NormalizeAmount(%s): expected ErrInvalidAmount, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAmount(%s): unexpected error %v", tt.in, err)
			continue
		}
		if FormatMoney(got) != tt.want {
			t.Errorf("NormalizeAmount(%s) = %s, want %s", tt.in, FormatMoney(got), tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("  250.5 ")
	if err != nil {
		t.Fatalf("ParseAmount err=%v", err)
	}
	if !got.Equal(decimal.RequireFromString("250.5")) {
		t.Errorf("Expected 250.5, got %s", got)
	}

	// 負數可以解析，交給帳本判斷
	if _, err := ParseAmount("-3"); err != nil {
		t.Errorf("ParseAmount(-3): unexpected error %v", err)
	}

	for _, in := range []string{"", "   ", "abc", "1,000", "12.3.4", "1e10000000", "1e-400", "2E3", "1000000000000000"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q): expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestParseAmount_MaxDigits(t *testing.T) {
	got, err := ParseAmount("999999999999999.99")
	if err != nil {
		t.Fatalf("ParseAmount err=%v", err)
	}
	if FormatMoney(got) != "999999999999999.99" {
		t.Errorf("Expected 999999999999999.99, got %s", FormatMoney(got))
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(decimal.Zero); got != "0.00" {
		t.Errorf("Expected 0.00, got %s", got)
	}
	if got := FormatMoney(decimal.RequireFromString("1234.5")); got != "1234.50" {
		t.Errorf("Expected 1234.50, got %s", got)
	}
}
