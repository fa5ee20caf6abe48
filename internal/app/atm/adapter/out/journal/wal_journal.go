package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
	"github.com/SquareDealer/labCI/pkg/wal"
)

// Entry 是稽核日誌中的一筆紀錄
type Entry struct {
	RefID     uuid.UUID              `json:"ref_id"`
	AccountID string                 `json:"account_id"`
	Sequence  uint64                 `json:"sequence"`
	Type      domain.TransactionType `json:"type"`
	Amount    decimal.Decimal        `json:"amount"`
	CreatedAt time.Time              `json:"created_at"`
}

func newEntry(accountID string, tran domain.Transaction) Entry {
	return Entry{
		RefID:     tran.TransactionID,
		AccountID: accountID,
		Sequence:  tran.Sequence,
		Type:      tran.Type,
		Amount:    tran.Amount,
		CreatedAt: tran.CreatedAt,
	}
}

// WALJournal 把每筆交易寫成 WAL 檔案中的一行 JSON
type WALJournal struct {
	wal *wal.WAL
}

// NewWALJournal 開啟 (或建立) path 指定的日誌檔
func NewWALJournal(path string) (*WALJournal, error) {
	w, err := wal.Open(path)
	if err != nil {
		return nil, err
	}
	return &WALJournal{wal: w}, nil
}

// Append 寫入一筆交易 (每筆都會 fsync)
func (j *WALJournal) Append(ctx context.Context, accountID string, tran domain.Transaction) error {
	if err := j.wal.Write(newEntry(accountID, tran)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrJournalWriteFailed, err)
	}
	return nil
}

// Entries 讀出所有已寫入的紀錄
func (j *WALJournal) Entries() ([]Entry, error) {
	entries := make([]Entry, 0)
	err := j.wal.ReadAll(func(jsonRaw []byte) error {
		var e Entry
		if err := json.Unmarshal(jsonRaw, &e); err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Path 回傳日誌檔路徑
func (j *WALJournal) Path() string {
	return j.wal.Path()
}

func (j *WALJournal) Close() error {
	return j.wal.Close()
}

var _ usecase.Journal = (*WALJournal)(nil)
