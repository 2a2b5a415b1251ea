package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Payment  PaymentConfig
	Storage  StorageConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AdminConfig struct {
	// bcrypt hash of the admin API key
	APIKeyHash string
}

type PaymentConfig struct {
	BaseURL    string
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
}

type StorageConfig struct {
	Bucket string
	Region string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PAYMENT_CURRENCY", "NAD")
	viper.SetDefault("S3_REGION", "eu-west-1")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			APIKeyHash: viper.GetString("ADMIN_API_KEY_HASH"),
		},
		Payment: PaymentConfig{
			BaseURL:    viper.GetString("PAYMENT_BASE_URL"),
			SecretKey:  viper.GetString("PAYMENT_SECRET_KEY"),
			Currency:   viper.GetString("PAYMENT_CURRENCY"),
			SuccessURL: viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:  viper.GetString("PAYMENT_CANCEL_URL"),
		},
		Storage: StorageConfig{
			Bucket: viper.GetString("S3_BUCKET_NAME"),
			Region: viper.GetString("S3_REGION"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			FromName: viper.GetString("EMAIL_FROM_NAME"),
			From:     viper.GetString("EMAIL_FROM"),
		},
	}

	return config, nil
}
