package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	EscrowDB   `yaml:"escrow_db"`
	LogConfig  `yaml:"log_config"`
	Gateway    `yaml:"gateway"`
	Kafka      `yaml:"kafka"`
	Auth       `yaml:"auth"`
	Background `yaml:"background"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn" env:"ESCROW_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Gateway struct {
	BaseURL           string `yaml:"base_url"`
	SecretKey         string `yaml:"secret_key" env:"GATEWAY_SECRET_KEY"`
	CallbackURL       string `yaml:"callback_url"`
	Currency          string `yaml:"currency" env-default:"ETB"`
	CommissionPercent string `yaml:"commission_percent" env-default:"0.05"`
	SellerBankCode    string `yaml:"seller_bank_code" env-default:"855"`
}

type Kafka struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	SettlementTopic string `yaml:"settlement_topic" env-default:"settlement-events"`
	DisputeTopic    string `yaml:"dispute_topic" env-default:"dispute-events"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
}

type Background struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

func MustLoad() *EscrowConfig {
	configPath := os.Getenv("ESCROW_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
