package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 金額精度：小數點後 2 位
const (
	CurrencyScale int32 = 2
)

// TimeLayout 交易時間的文字格式
const TimeLayout = "2006-01-02T15:04:05"

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdrawal TransactionType = 2
)

// String 回傳交易類型名稱 (Deposit / Withdrawal)
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	default:
		return fmt.Sprintf("TransactionType(%d)", uint8(t))
	}
}

// MarshalText 讓 JSON 輸出使用類型名稱而非數字
func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText 解析類型名稱
func (t *TransactionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Deposit":
		*t = TransactionTypeDeposit
	case "Withdrawal":
		*t = TransactionTypeWithdrawal
	default:
		return fmt.Errorf("unknown transaction type %q", text)
	}
	return nil
}

// Transaction 交易紀錄，建立後不可修改
type Transaction struct {
	// TransactionID: 外部追蹤號 (UUID)
	TransactionID uuid.UUID `json:"transaction_id"`
	// Sequence: 帳戶內的順序號 (1, 2, 3...)
	Sequence uint64 `json:"sequence"`
	// Amount: 金額，永遠為正數
	Amount decimal.Decimal `json:"amount"`
	// CreatedAt: 交易時間
	CreatedAt time.Time `json:"created_at"`
	Type      TransactionType `json:"type"`
}

// SignedAmount 回傳帶正負號的金額 (提款為負)
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// String 例如 "Deposit: +100.00 at 2025-01-15T14:30:00"
func (t Transaction) String() string {
	sign := "+"
	if t.Type == TransactionTypeWithdrawal {
		sign = "-"
	}
	return fmt.Sprintf("%s: %s%s at %s", t.Type, sign, FormatMoney(t.Amount), t.CreatedAt.Format(TimeLayout))
}
