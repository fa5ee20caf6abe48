package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
)

func sampleStatement() Statement {
	at := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	return Statement{
		AccountID: "12345",
		Balance:   decimal.RequireFromString("50"),
		Transactions: []domain.Transaction{
			{TransactionID: uuid.New(), Sequence: 1, Amount: decimal.RequireFromString("100"), CreatedAt: at, Type: domain.TransactionTypeDeposit},
			{TransactionID: uuid.New(), Sequence: 2, Amount: decimal.RequireFromString("50"), CreatedAt: at.Add(time.Minute), Type: domain.TransactionTypeWithdrawal},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
		wantErr bool
	}{
		{name: "", wantExt: "txt"},
		{name: "text", wantExt: "txt"},
		{name: "json", wantExt: "json"},
		{name: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.name, false)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for format %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFormatter(%q) err=%v", tt.name, err)
			}
			if f.FileExtension() != tt.wantExt {
				t.Errorf("Expected extension %s, got %s", tt.wantExt, f.FileExtension())
			}
		})
	}
}

func TestTextFormatter_Format(t *testing.T) {
	out, err := NewTextFormatter().Format(sampleStatement())
	if err != nil {
		t.Fatal(err)
	}
	want := "Transaction History:\n" +
		"Deposit: +100.00 at 2025-01-15T14:30:00\n" +
		"Withdrawal: -50.00 at 2025-01-15T14:31:00\n"
	if string(out) != want {
		t.Errorf("Unexpected text output:\n%s\nwant:\n%s", out, want)
	}
}

func TestTextFormatter_Empty(t *testing.T) {
	out, err := NewTextFormatter().Format(Statement{AccountID: "12345"})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "No transactions yet.\n" {
		t.Errorf("Unexpected output for empty history: %q", out)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := NewJSONFormatter(true).Format(sampleStatement())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "\n  \"account_id\": \"12345\"") {
		t.Errorf("Expected indented output, got %s", out)
	}

	var decoded struct {
		AccountID    string `json:"account_id"`
		Balance      string `json:"balance"`
		Transactions []struct {
			Sequence uint64 `json:"sequence"`
			Type     string `json:"type"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.AccountID != "12345" || decoded.Balance != "50" {
		t.Errorf("Unexpected header: %+v", decoded)
	}
	if len(decoded.Transactions) != 2 || decoded.Transactions[1].Type != "Withdrawal" || decoded.Transactions[1].Sequence != 2 {
		t.Errorf("Unexpected transactions: %+v", decoded.Transactions)
	}
}

func TestJSONFormatter_EmptyHistory(t *testing.T) {
	out, err := NewJSONFormatter(false).Format(Statement{AccountID: "A", Balance: decimal.Zero})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"transactions":[]`) {
		t.Errorf("Expected empty array, got %s", out)
	}
}
