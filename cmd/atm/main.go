package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SquareDealer/labCI/internal/app/atm/adapter/in/console"
	"github.com/SquareDealer/labCI/internal/app/atm/adapter/out/journal"
	"github.com/SquareDealer/labCI/internal/app/atm/adapter/out/memory"
	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
	"github.com/SquareDealer/labCI/internal/config"
	"github.com/SquareDealer/labCI/internal/report"
)

func main() {
	var (
		configPath string
		format     string
	)
	flag.StringVar(&configPath, "config", "config/config.yaml", "Path to the YAML config file")
	flag.StringVar(&format, "format", "", "History output format: text or json (overrides config)")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to load config: %v", err))
	}
	if format != "" {
		cfg.Statement.Format = format
	}

	formatter, err := report.NewFormatter(cfg.Statement.Format, cfg.Statement.Pretty)
	if err != nil {
		exitWithError(err.Error())
	}

	// 2. 稽核日誌 (可選)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	journalSink, err := journal.Open(ctx, cfg.Journal)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to open journal: %v", err))
	}
	if journalSink != nil {
		defer journalSink.Close()
	}

	// 3. 初始化帳本與 UseCase
	ledger := memory.NewMemoryLedger()
	atm := usecase.NewATMUseCase(ledger)

	// 4. 選單迴圈 (Driving Adapter)
	opts := []console.SessionOption{console.WithFormatter(formatter)}
	if journalSink != nil {
		opts = append(opts, console.WithJournal(journalSink))
	}
	session := console.NewSession(atm, os.Stdin, os.Stdout, opts...)

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Reading input failed: %v", err)
		}
	case <-ctx.Done():
		// 讀取輸入的 goroutine 無法中斷，先等進行中的日誌寫入結束再關閉 journal
		session.Stop()
		fmt.Println()
		fmt.Println("Thank you for using our ATM. Goodbye!")
		log.Println("Interrupted, exiting")
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
