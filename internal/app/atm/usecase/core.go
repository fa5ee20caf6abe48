package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
)

// ATMUseCase 是 ATM 的指令層
// 除了 OpenAccount 之外，所有操作都必須先建立帳戶，否則回傳 domain.ErrAccountNotFound
type ATMUseCase struct {
	ledger Ledger
	opened bool
}

func NewATMUseCase(ledger Ledger) *ATMUseCase {
	return &ATMUseCase{
		ledger: ledger,
	}
}

// OpenAccount 建立帳戶 (重複呼叫會以新帳戶取代舊帳戶)
func (a *ATMUseCase) OpenAccount(ctx context.Context, accountID string) {
	a.ledger.Open(ctx, accountID)
	a.opened = true
}

// AccountID 取得目前帳戶識別碼
func (a *ATMUseCase) AccountID(ctx context.Context) (string, error) {
	if !a.opened {
		return "", domain.ErrAccountNotFound
	}
	return a.ledger.AccountID(ctx), nil
}

// Deposit 存款
func (a *ATMUseCase) Deposit(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error) {
	if !a.opened {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	return a.ledger.Deposit(ctx, amount)
}

// Withdraw 提款
func (a *ATMUseCase) Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Transaction, error) {
	if !a.opened {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	return a.ledger.Withdraw(ctx, amount)
}

// Balance 取得帳戶餘額
func (a *ATMUseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	if !a.opened {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return a.ledger.Balance(ctx), nil
}

// History 取得交易紀錄
func (a *ATMUseCase) History(ctx context.Context) ([]domain.Transaction, error) {
	if !a.opened {
		return nil, domain.ErrAccountNotFound
	}
	return a.ledger.History(ctx), nil
}
