package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName    string
	AppVersion string

	DBPath string

	LogLevel string

	// InvoicePrefix is the default prefix for allocated invoice numbers.
	InvoicePrefix string

	// PDFEnabled selects the printable-document capability at startup.
	// It is not re-checked per call: when false, every render request
	// fails fast.
	PDFEnabled bool
	PDFOutDir  string

	SeedSampleData bool

	HTTPAddr string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:        getenv("APP_SERVICE", "invoicedesk"),
		AppVersion:     getenv("APP_VERSION", "0.1.0"),
		DBPath:         getenv("DATABASE_PATH", defaultDBPath()),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		InvoicePrefix:  getenv("INVOICE_PREFIX", "INV"),
		PDFEnabled:     getenvBool("PDF_ENABLED", true),
		PDFOutDir:      getenv("PDF_OUT_DIR", os.TempDir()),
		SeedSampleData: getenvBool("SEED_SAMPLE_DATA", false),
		HTTPAddr:       getenv("HTTP_ADDR", "127.0.0.1:8080"),
	}
}

// Module provides the application configuration.
var Module = fx.Provide(Load)

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "invoicedesk.db"
	}
	return filepath.Join(home, ".invoicedesk.db")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
