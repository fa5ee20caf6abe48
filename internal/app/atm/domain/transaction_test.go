package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTransaction_String(t *testing.T) {
	at := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	dep := Transaction{Amount: decimal.RequireFromString("100"), CreatedAt: at, Type: TransactionTypeDeposit}
	if got, want := dep.String(), "Deposit: +100.00 at 2025-01-15T14:30:00"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	wd := Transaction{Amount: decimal.RequireFromString("50.5"), CreatedAt: at, Type: TransactionTypeWithdrawal}
	if got, want := wd.String(), "Withdrawal: -50.50 at 2025-01-15T14:30:00"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	amt := decimal.RequireFromString("7.25")
	if got := (Transaction{Amount: amt, Type: TransactionTypeDeposit}).SignedAmount(); !got.Equal(amt) {
		t.Errorf("Expected +7.25, got %s", got)
	}
	if got := (Transaction{Amount: amt, Type: TransactionTypeWithdrawal}).SignedAmount(); !got.Equal(amt.Neg()) {
		t.Errorf("Expected -7.25, got %s", got)
	}
}

func TestTransactionType_Text(t *testing.T) {
	tran := Transaction{
		TransactionID: uuid.New(),
		Sequence:      1,
		Amount:        decimal.RequireFromString("10"),
		CreatedAt:     time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
		Type:          TransactionTypeWithdrawal,
	}
	raw, err := json.Marshal(tran)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"type":"Withdrawal"`) {
		t.Errorf("Expected type name in JSON, got %s", raw)
	}

	var back Transaction
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal err=%v", err)
	}
	if back.Type != TransactionTypeWithdrawal || back.TransactionID != tran.TransactionID {
		t.Errorf("Unexpected round trip result: %+v", back)
	}

	var typ TransactionType
	if err := typ.UnmarshalText([]byte("Transfer")); err == nil {
		t.Error("Expected error for unknown transaction type")
	}
	if got := TransactionType(9).String(); got != "TransactionType(9)" {
		t.Errorf("Unexpected name for unknown type: %s", got)
	}
}
