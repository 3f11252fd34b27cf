package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Paystack    PaystackConfig `mapstructure:"paystack"`
	Fees        FeesConfig     `mapstructure:"fees"`
	Wallet      WalletConfig   `mapstructure:"wallet"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig selects and configures the ledger store adapter.
// Driver is "dynamodb" or "postgres".
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`

	// Postgres settings (gorm adapter)
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds

	// DynamoDB settings
	Region         string `mapstructure:"region"`
	Endpoint       string `mapstructure:"endpoint"` // optional, for local stacks
	UsersTable     string `mapstructure:"usersTable"`
	PurchasesTable string `mapstructure:"purchasesTable"`
	TicketsTable   string `mapstructure:"ticketsTable"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// PaystackConfig contains payment gateway settings
type PaystackConfig struct {
	SecretKey   string        `mapstructure:"secretKey"`
	BaseURL     string        `mapstructure:"baseURL"`
	CallbackURL string        `mapstructure:"callbackURL"`
	Timeout     time.Duration `mapstructure:"timeout"` // seconds
}

// FeesConfig is the fee schedule in naira / basis points.
type FeesConfig struct {
	ServiceFeeNaira        string `mapstructure:"serviceFeeNaira"`
	PlatformRateBps        int64  `mapstructure:"platformRateBps"`
	PlatformSurchargeNaira string `mapstructure:"platformSurchargeNaira"`
	PlatformSurchargeFloor string `mapstructure:"platformSurchargeFloor"`
	CommissionRateBps      int64  `mapstructure:"commissionRateBps"`
}

// WalletConfig tunes the balance manager.
type WalletConfig struct {
	MaxRetries int `mapstructure:"maxRetries"`
}
