package domain

import "errors"

var (
	// ErrAccountNotFound 尚未建立帳戶
	ErrAccountNotFound = errors.New("no account found, please create an account first")

	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrJournalWriteFailed 稽核日誌寫入失敗
	ErrJournalWriteFailed = errors.New("journal write failed")
)
