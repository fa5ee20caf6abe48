package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/SquareDealer/labCI/internal/app/atm/domain"
	"github.com/SquareDealer/labCI/internal/app/atm/usecase"
	"github.com/SquareDealer/labCI/internal/report"
)

const goodbye = "Thank you for using our ATM. Goodbye!"

// SessionOption 定義 Session 的配置選項函數
type SessionOption func(*Session)

// WithJournal 成功的存提款會寫入稽核日誌
func WithJournal(journal usecase.Journal) SessionOption {
	return func(s *Session) {
		s.journal = journal
	}
}

// WithFormatter 設定交易紀錄的輸出格式 (預設 text)
func WithFormatter(formatter report.OutputFormatter) SessionOption {
	return func(s *Session) {
		s.formatter = formatter
	}
}

// WithLogger 設定 logger (預設 log.Default())
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session 是文字選單的互動迴圈
// 只負責提示、解析輸入與輸出，業務邏輯全部交給 ATMUseCase
type Session struct {
	atm       *usecase.ATMUseCase
	journal   usecase.Journal
	formatter report.OutputFormatter
	logger    *log.Logger
	in        *bufio.Scanner
	out       io.Writer

	// mu 保護 journal 的寫入與 stopped
	mu      sync.Mutex
	stopped bool
}

func NewSession(atm *usecase.ATMUseCase, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		atm:       atm,
		formatter: report.NewTextFormatter(),
		logger:    log.Default(),
		in:        bufio.NewScanner(in),
		out:       out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run 執行選單迴圈，直到選擇離開或輸入結束
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	error: 讀取輸入的錯誤 (業務錯誤只會印出，不會中斷迴圈)
func (s *Session) Run(ctx context.Context) error {
	for {
		s.displayMenu()
		choice, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, goodbye)
			return s.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = s.createAccount(ctx)
		case "2":
			err = s.checkBalance(ctx)
		case "3":
			err = s.deposit(ctx)
		case "4":
			err = s.withdraw(ctx)
		case "5":
			err = s.showTransactionHistory(ctx)
		case "6":
			fmt.Fprintln(s.out, goodbye)
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}

		fmt.Fprintln(s.out, "\nPress Enter to continue...")
		if _, ok := s.readLine(); !ok {
			fmt.Fprintln(s.out, goodbye)
			return s.in.Err()
		}
	}
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out, "=== ATM Menu ===")
	fmt.Fprintln(s.out, "1. Create Account")
	fmt.Fprintln(s.out, "2. Check Balance")
	fmt.Fprintln(s.out, "3. Deposit")
	fmt.Fprintln(s.out, "4. Withdraw")
	fmt.Fprintln(s.out, "5. Show Transaction History")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprint(s.out, "Enter your choice (1-6): ")
}

// readLine 讀取一行並去除空白；輸入結束時 ok 為 false
func (s *Session) readLine() (line string, ok bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) createAccount(ctx context.Context) error {
	fmt.Fprint(s.out, "Enter account number: ")
	accountID, ok := s.readLine()
	if !ok {
		return io.ErrUnexpectedEOF
	}
	s.atm.OpenAccount(ctx, accountID)
	fmt.Fprintf(s.out, "Account created successfully. Account number: %s\n", accountID)
	return nil
}

func (s *Session) checkBalance(ctx context.Context) error {
	balance, err := s.atm.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Current balance: %s\n", domain.FormatMoney(balance))
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	fmt.Fprint(s.out, "Enter amount to deposit: ")
	line, ok := s.readLine()
	if !ok {
		return io.ErrUnexpectedEOF
	}
	amount, err := domain.ParseAmount(line)
	if err != nil {
		return err
	}
	tran, err := s.atm.Deposit(ctx, amount)
	if err != nil {
		return err
	}
	s.record(ctx, tran)
	return s.printNewBalance(ctx, "deposited", tran)
}

func (s *Session) withdraw(ctx context.Context) error {
	fmt.Fprint(s.out, "Enter amount to withdraw: ")
	line, ok := s.readLine()
	if !ok {
		return io.ErrUnexpectedEOF
	}
	amount, err := domain.ParseAmount(line)
	if err != nil {
		return err
	}
	tran, err := s.atm.Withdraw(ctx, amount)
	if err != nil {
		return err
	}
	s.record(ctx, tran)
	return s.printNewBalance(ctx, "withdrew", tran)
}

func (s *Session) printNewBalance(ctx context.Context, verb string, tran domain.Transaction) error {
	balance, err := s.atm.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Successfully %s %s. New balance: %s\n", verb, domain.FormatMoney(tran.Amount), domain.FormatMoney(balance))
	return nil
}

func (s *Session) showTransactionHistory(ctx context.Context) error {
	history, err := s.atm.History(ctx)
	if err != nil {
		return err
	}
	accountID, err := s.atm.AccountID(ctx)
	if err != nil {
		return err
	}
	balance, err := s.atm.Balance(ctx)
	if err != nil {
		return err
	}

	output, err := s.formatter.Format(report.Statement{
		AccountID:    accountID,
		Balance:      balance,
		Transactions: history,
	})
	if err != nil {
		return fmt.Errorf("formatting history: %w", err)
	}
	if _, err := s.out.Write(output); err != nil {
		return err
	}
	if len(output) > 0 && output[len(output)-1] != '\n' {
		fmt.Fprintln(s.out)
	}
	return nil
}

// Stop 等待進行中的日誌寫入完成，之後的交易不再寫入日誌
// 呼叫後即可安全關閉 journal
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// record 寫入稽核日誌；失敗只記錄 log，不影響已完成的交易
func (s *Session) record(ctx context.Context, tran domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.journal == nil || s.stopped {
		return
	}
	accountID, err := s.atm.AccountID(ctx)
	if err != nil {
		return
	}
	if err := s.journal.Append(ctx, accountID, tran); err != nil {
		s.logger.Printf("journal append failed for %s: %v", tran.TransactionID, err)
	}
}
