package journal

import (
	"context"
	"fmt"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
	"github.com/SquareDealer/labCI/pkg/database"
)

// sqlEntry 對應資料庫的 journal_entries 表
type sqlEntry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RefID     []byte `gorm:"column:ref_id;type:binary(16);uniqueIndex"` // 對應 domain.Transaction.TransactionID
	AccountID string `gorm:"size:64;index"`
	Sequence  uint64
	Type      uint8
	Amount    string `gorm:"size:32"` // 兩位小數的十進位字串，避免浮點誤差
	CreatedAt int64  // UnixMilli，由交易時間寫入
}

func (*sqlEntry) TableName() string {
	return "journal_entries"
}

// SQLJournal 把交易寫入 MySQL 或 SQLite (GORM)
type SQLJournal struct {
	client *database.Client
}

// NewSQLJournal 建立 SQLJournal 並自動建立資料表
//
// 參數:
//
//	client: 已連線的資料庫客戶端
//
// 回傳:
//
//	*SQLJournal: 實例
//	error: migration 錯誤
func NewSQLJournal(client *database.Client) (*SQLJournal, error) {
	if err := client.DB().AutoMigrate(&sqlEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}
	return &SQLJournal{client: client}, nil
}

// Append 寫入一筆交易
func (j *SQLJournal) Append(ctx context.Context, accountID string, tran domain.Transaction) error {
	entry := sqlEntry{
		RefID:     tran.TransactionID[:],
		AccountID: accountID,
		Sequence:  tran.Sequence,
		Type:      uint8(tran.Type),
		Amount:    domain.FormatMoney(tran.Amount),
		CreatedAt: tran.CreatedAt.UnixMilli(),
	}
	if err := j.client.DB().WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrJournalWriteFailed, err)
	}
	return nil
}

// Count 回傳所有帳戶的紀錄筆數
func (j *SQLJournal) Count(ctx context.Context) (int64, error) {
	var n int64
	err := j.client.DB().WithContext(ctx).Model(&sqlEntry{}).Count(&n).Error
	return n, err
}

func (j *SQLJournal) Close() error {
	return j.client.Close()
}

var _ usecase.Journal = (*SQLJournal)(nil)
