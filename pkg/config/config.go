package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the bridge client configuration
type Config struct {
	Server      ServerConfig       `mapstructure:"server"`
	Wallet      WalletConfig       `mapstructure:"wallet"`
	Transfer    TransferConfig     `mapstructure:"transfer"`
	Networks    []NetworkConfig    `mapstructure:"networks"`
	Deployments []DeploymentConfig `mapstructure:"deployments"`
	Monitoring  MonitoringConfig   `mapstructure:"monitoring"`
	Logging     LoggingConfig      `mapstructure:"logging"`
	Auth        AuthConfig         `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings for the UI-facing API
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// WalletConfig selects how the client reaches a signer.
//
// Mode "rpc" talks to an EIP-1193 compatible wallet over JSON-RPC at URL.
// Mode "keyed" signs locally with PrivateKey against the active network's RPC endpoint.
type WalletConfig struct {
	Mode         string        `mapstructure:"mode"`
	URL          string        `mapstructure:"url"`
	PrivateKey   string        `mapstructure:"private_key"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// TransferConfig contains transfer orchestration settings
type TransferConfig struct {
	ApprovalGasLimit    uint64        `mapstructure:"approval_gas_limit"`
	TransferGasLimit    uint64        `mapstructure:"transfer_gas_limit"`
	MaxGasPrice         string        `mapstructure:"max_gas_price"`
	StrictDestination   bool          `mapstructure:"strict_destination"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
}

// NativeCurrencyConfig describes a network's native coin
type NativeCurrencyConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Symbol   string `mapstructure:"symbol" yaml:"symbol"`
	Decimals int    `mapstructure:"decimals" yaml:"decimals" default:"18"`
}

// NetworkConfig describes one entry of the network registry
type NetworkConfig struct {
	Key            string               `mapstructure:"key" yaml:"key"`
	ChainID        uint64               `mapstructure:"chain_id" yaml:"chain_id"`
	DisplayName    string               `mapstructure:"display_name" yaml:"display_name"`
	NativeCurrency NativeCurrencyConfig `mapstructure:"native_currency" yaml:"native_currency"`
	RPCURLs        []string             `mapstructure:"rpc_urls" yaml:"rpc_urls"`
}

// DeploymentConfig describes the bridge contracts deployed on a network
type DeploymentConfig struct {
	Network       string `mapstructure:"network" yaml:"network"`
	BridgeAddress string `mapstructure:"bridge_address" yaml:"bridge_address"`
	TokenAddress  string `mapstructure:"token_address" yaml:"token_address"`
	CallSignature string `mapstructure:"call_signature" yaml:"call_signature" default:"recipient"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig protects the API with bearer tokens when either field is set.
type AuthConfig struct {
	JWKSURL    string `mapstructure:"jwks_url"`
	Issuer     string `mapstructure:"issuer"`
	HMACSecret string `mapstructure:"hmac_secret"`
}

// Enabled reports whether API authentication is configured
func (c AuthConfig) Enabled() bool {
	return c.JWKSURL != "" || c.HMACSecret != ""
}

// Load loads configuration from file and environment variables.
// An empty configPath loads defaults and environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8645)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Wallet defaults
	v.SetDefault("wallet.mode", "rpc")
	v.SetDefault("wallet.url", "")
	v.SetDefault("wallet.private_key", "")
	v.SetDefault("wallet.poll_interval", "2s")

	// Transfer defaults
	v.SetDefault("transfer.approval_gas_limit", 100000)
	v.SetDefault("transfer.transfer_gas_limit", 300000)
	v.SetDefault("transfer.max_gas_price", "")
	v.SetDefault("transfer.strict_destination", true)
	v.SetDefault("transfer.confirmation_timeout", "0s")

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	switch config.Wallet.Mode {
	case "rpc":
	case "keyed":
		if config.Wallet.PrivateKey == "" {
			return fmt.Errorf("wallet.private_key is required in keyed mode")
		}
	default:
		return fmt.Errorf("unsupported wallet.mode %q", config.Wallet.Mode)
	}
	if config.Transfer.ApprovalGasLimit == 0 {
		return fmt.Errorf("transfer.approval_gas_limit must be positive")
	}
	if config.Transfer.TransferGasLimit == 0 {
		return fmt.Errorf("transfer.transfer_gas_limit must be positive")
	}
	if config.Transfer.ConfirmationTimeout < 0 {
		return fmt.Errorf("transfer.confirmation_timeout must not be negative")
	}
	if config.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	return nil
}
