package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxIntegerDigits 金額整數部分的最大位數
const MaxIntegerDigits = 15

// NormalizeAmount 將金額四捨五入到 CurrencyScale 位，並檢查必須大於 0
//
// 參數:
//
//	amount: 原始金額
//
// 回傳:
//
//	decimal.Decimal: 四捨五入後的金額
//	error: 金額 <= 0 或超過 MaxIntegerDigits 位時回傳 ErrInvalidAmount
func NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	// 先檢查位數再 Round，極大的指數會讓 Round 展開成同樣多位的整數
	if integerDigits(amount) > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("amount exceeds %d integer digits: %w", MaxIntegerDigits, ErrInvalidAmount)
	}
	rounded := amount.Round(CurrencyScale)
	if !rounded.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return rounded, nil
}

// ParseAmount 解析使用者輸入的金額字串
// 只接受一般十進位寫法 (不接受 1e5 這類科學記號)
// 格式錯誤或整數超過 MaxIntegerDigits 位一律視為 ErrInvalidAmount，不會進入帳本
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", ErrInvalidAmount)
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount format %q: %w", s, ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || integerDigits(amount) > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("invalid amount format %q: %w", s, ErrInvalidAmount)
	}
	return amount, nil
}

// integerDigits 回傳整數部分的位數，只看係數長度與指數，不展開數值
func integerDigits(amount decimal.Decimal) int64 {
	return int64(amount.NumDigits()) + int64(amount.Exponent())
}

// FormatMoney 固定輸出兩位小數
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyScale)
}
