package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/SquareDealer/labCI/pkg/database"
)

// 稽核日誌驅動
const (
	JournalNone   = "none"
	JournalWAL    = "wal"
	JournalSQLite = database.DriverSQLite
	JournalMySQL  = database.DriverMySQL
)

// 交易明細輸出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Journal   JournalConfig   `yaml:"journal"`
	Statement StatementConfig `yaml:"statement"`
}

// JournalConfig 稽核日誌設定
type JournalConfig struct {
	Driver string          `yaml:"driver"` // none | wal | sqlite | mysql
	Path   string          `yaml:"path"`   // wal 檔案或 sqlite 資料庫路徑
	MySQL  database.Config `yaml:"mysql"`
}

// StatementConfig 交易明細設定
type StatementConfig struct {
	Format string `yaml:"format"` // text | json
	Pretty bool   `yaml:"pretty"`
}

// Database 回傳 sqlite/mysql 驅動對應的資料庫設定
func (j JournalConfig) Database() database.Config {
	if j.Driver == JournalSQLite {
		return database.Config{Driver: database.DriverSQLite, Path: j.Path, LogLevel: j.MySQL.LogLevel}
	}
	cfg := j.MySQL
	cfg.Driver = database.DriverMySQL
	return cfg
}

// Load 讀取設定
// 1. 若存在 .env 則載入到環境變數
// 2. 讀取 path 指定的 YAML (檔案不存在時使用預設值)
// 3. 環境變數覆蓋檔案設定
// 4. 補全預設值並檢查
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// 使用預設值
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Journal.Driver, "ATM_JOURNAL_DRIVER")
	setString(&cfg.Journal.Path, "ATM_JOURNAL_PATH")
	setString(&cfg.Statement.Format, "ATM_STATEMENT_FORMAT")
	setString(&cfg.Journal.MySQL.Host, "ATM_MYSQL_HOST")
	setString(&cfg.Journal.MySQL.User, "ATM_MYSQL_USER")
	setString(&cfg.Journal.MySQL.Password, "ATM_MYSQL_PASSWORD")
	setString(&cfg.Journal.MySQL.DBName, "ATM_MYSQL_DBNAME")
	if v := os.Getenv("ATM_MYSQL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ATM_MYSQL_PORT %q: %w", v, err)
		}
		cfg.Journal.MySQL.Port = port
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Journal.Driver == "" {
		cfg.Journal.Driver = JournalNone
	}
	if cfg.Journal.Path == "" {
		switch cfg.Journal.Driver {
		case JournalWAL:
			cfg.Journal.Path = "journal.log"
		case JournalSQLite:
			cfg.Journal.Path = "journal.db"
		}
	}
	cfg.Journal.MySQL.ApplyDefaults()
	if cfg.Statement.Format == "" {
		cfg.Statement.Format = FormatText
	}
}

// Validate 檢查設定值
func (c Config) Validate() error {
	switch c.Journal.Driver {
	case JournalNone, JournalWAL, JournalSQLite, JournalMySQL:
	default:
		return fmt.Errorf("unknown journal driver %q", c.Journal.Driver)
	}
	switch c.Statement.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown statement format %q", c.Statement.Format)
	}
	return nil
}
