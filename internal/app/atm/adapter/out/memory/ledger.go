package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
)

// LedgerOption 定義 MemoryLedger 的配置選項函數
type LedgerOption func(*MemoryLedger)

// WithClock 設定交易時間來源 (測試用)
func WithClock(now func() time.Time) LedgerOption {
	return func(m *MemoryLedger) {
		m.now = now
	}
}

// MemoryLedger 是單一帳戶的記憶體帳本
//
// 結構:
//
//	accountID: 帳戶識別碼
//	balance: 目前餘額，永遠等於 transactions 的帶號總和
//	transactions: 交易紀錄，只會追加
//	now: 時間來源
//
// 單執行緒使用，不加鎖
type MemoryLedger struct {
	accountID    string
	balance      decimal.Decimal
	transactions []domain.Transaction
	now          func() time.Time
}

// NewMemoryLedger 建立一個新的 MemoryLedger 實例
//
// 參數:
//
//	opts: 可選的配置
//
// 回傳:
//
//	*MemoryLedger: MemoryLedger 實例
func NewMemoryLedger(opts ...LedgerOption) *MemoryLedger {
	m := &MemoryLedger{
		balance: decimal.Zero,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open 建立帳戶，餘額歸零並清空交易紀錄
func (m *MemoryLedger) Open(ctx context.Context, accountID string) {
	m.accountID = accountID
	m.balance = decimal.Zero
	m.transactions = nil
}

// AccountID 回傳帳戶識別碼
func (m *MemoryLedger) AccountID(ctx context.Context) string {
	return m.accountID
}

// Deposit 處理存款邏輯
//
// 參數:
//
//	ctx: 上下文
//	amount: 存款金額 (會四捨五入到兩位小數)
//
// 回傳:
//
//	domain.Transaction: 新增的交易
//	error: 金額 <= 0 時回傳 domain.ErrInvalidAmount
func (m *MemoryLedger) Deposit(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error) {
	amount, err := domain.NormalizeAmount(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("deposit: %w", err)
	}
	m.balance = m.balance.Add(amount)
	return m.record(domain.TransactionTypeDeposit, amount), nil
}

// Withdraw 處理提款邏輯
//
// 參數:
//
//	ctx: 上下文
//	amount: 提款金額 (會四捨五入到兩位小數)
//
// 回傳:
//
//	domain.Transaction: 新增的交易
//	error: 金額 <= 0 回傳 domain.ErrInvalidAmount，餘額不足回傳 domain.ErrInsufficientFunds
func (m *MemoryLedger) Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error) {
	amount, err := domain.NormalizeAmount(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("withdrawal: %w", err)
	}
	if amount.GreaterThan(m.balance) {
		return domain.Transaction{}, fmt.Errorf("%w: current balance %s, requested %s",
			domain.ErrInsufficientFunds, domain.FormatMoney(m.balance), domain.FormatMoney(amount))
	}
	m.balance = m.balance.Sub(amount)
	return m.record(domain.TransactionTypeWithdrawal, amount), nil
}

// Balance 取得目前餘額
func (m *MemoryLedger) Balance(ctx context.Context) decimal.Decimal {
	return m.balance
}

// History 回傳交易紀錄的副本，之後的交易不會影響已取得的切片
func (m *MemoryLedger) History(ctx context.Context) []domain.Transaction {
	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// record 追加一筆交易 (呼叫前餘額已更新)
func (m *MemoryLedger) record(txType domain.TransactionType, amount decimal.Decimal) domain.Transaction {
	tran := domain.Transaction{
		TransactionID: uuid.New(),
		Sequence:      uint64(len(m.transactions)) + 1,
		Amount:        amount,
		CreatedAt:     m.now(),
		Type:          txType,
	}
	m.transactions = append(m.transactions, tran)
	return tran
}

var _ usecase.Ledger = (*MemoryLedger)(nil)
