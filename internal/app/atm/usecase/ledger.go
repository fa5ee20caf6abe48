package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
)

// Ledger 是單一帳戶帳本的介面
type Ledger interface {
	// Open 建立帳戶，餘額歸零並清空交易紀錄
	Open(ctx context.Context, accountID string)
	// AccountID 目前帳戶的識別碼
	AccountID(ctx context.Context) string
	// Deposit 存款，回傳新增的交易
	Deposit(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error)
	// Withdraw 提款，回傳新增的交易
	Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error)
	// Balance 取得目前餘額
	Balance(ctx context.Context) decimal.Decimal
	// History 取得交易紀錄的副本
	History(ctx context.Context) []domain.Transaction
}

// Journal 稽核日誌，只寫不讀，不用於還原帳戶狀態
type Journal interface {
	// Append 寫入一筆成功的交易
	Append(ctx context.Context, accountID string, tran domain.Transaction) error
	// Close 釋放底層資源
	Close() error
}
