package journal

import (
	"context"
	"fmt"
	"log"

	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
	"github.com/SquareDealer/labCI/internal/config"
	"github.com/SquareDealer/labCI/pkg/database"
)

// Open 依設定建立稽核日誌；driver 為 none 時回傳 nil
// 開啟時會先讀過既有紀錄，確認日誌可讀並記錄筆數 (不會用來還原帳戶)
func Open(ctx context.Context, cfg config.JournalConfig) (usecase.Journal, error) {
	switch cfg.Driver {
	case config.JournalNone, "":
		return nil, nil
	case config.JournalWAL:
		j, err := NewWALJournal(cfg.Path)
		if err != nil {
			return nil, err
		}
		entries, err := j.Entries()
		if err != nil {
			j.Close()
			return nil, fmt.Errorf("reading journal %s: %w", j.Path(), err)
		}
		log.Printf("Journal enabled (wal %s, %d existing entries)", j.Path(), len(entries))
		return j, nil
	case config.JournalSQLite, config.JournalMySQL:
		client, err := database.NewClient(cfg.Database())
		if err != nil {
			return nil, err
		}
		j, err := NewSQLJournal(client)
		if err != nil {
			client.Close()
			return nil, err
		}
		n, err := j.Count(ctx)
		if err != nil {
			j.Close()
			return nil, fmt.Errorf("counting journal entries: %w", err)
		}
		log.Printf("Journal enabled (%s, %d existing entries)", cfg.Driver, n)
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal driver %q", cfg.Driver)
	}
}
