package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
)

// Statement is the account history handed to a formatter
type Statement struct {
	AccountID    string               `json:"account_id"`
	Balance      decimal.Decimal      `json:"balance"`
	Transactions []domain.Transaction `json:"transactions"`
}

// OutputFormatter defines the interface for formatting an account statement
type OutputFormatter interface {
	Format(stmt Statement) ([]byte, error)
	FileExtension() string
}

// NewFormatter returns the formatter registered for name (text or json)
func NewFormatter(name string, prettyPrint bool) (OutputFormatter, error) {
	switch name {
	case "text", "":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

// TextFormatter prints one transaction per line
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(stmt Statement) ([]byte, error) {
	var buf bytes.Buffer
	if len(stmt.Transactions) == 0 {
		buf.WriteString("No transactions yet.\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("Transaction History:\n")
	for _, tran := range stmt.Transactions {
		buf.WriteString(tran.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// JSONFormatter formats the statement as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(stmt Statement) ([]byte, error) {
	// Keep "transactions": [] instead of null for an empty history
	if stmt.Transactions == nil {
		stmt.Transactions = []domain.Transaction{}
	}
	if f.PrettyPrint {
		return json.MarshalIndent(stmt, "", "  ")
	}
	return json.Marshal(stmt)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
