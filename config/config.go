package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"

	"github.com/bkiskm0705-stack/nutrition-app/store"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	Auth  AuthConfig
	AWS   AWSConfig
}

type AppConfig struct {
	Port int `default:"8080" env:"APP_PORT"`
}

type StoreConfig struct {
	// Backend selects the table store implementation: "sheets" (the
	// spreadsheet the team actually uses), "postgres", or "memory".
	Backend         string `default:"sheets" env:"STORE_BACKEND"`
	SheetURL        string `env:"SHEET_URL"`
	CredentialsJSON string `env:"GCP_CREDENTIALS_JSON"`
	CredentialsFile string `env:"GCP_CREDENTIALS_FILE"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DB_HOST"`
	DataBase string `default:"condition" env:"DB_NAME"`
	User     string `default:"postgres" env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Port     uint   `default:"5432" env:"DB_PORT"`
	SSLMode  string `default:"disable" env:"DB_SSLMODE"`
}

type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type AWSConfig struct {
	S3Bucket      string `env:"S3_BUCKET"`
	S3Region      string `env:"S3_REGION"`
	CloudFrontURL string `env:"CLOUDFRONT_URL"`
	SESEmail      string `env:"SES_EMAIL"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	Moderation    bool   `env:"IMAGE_MODERATION"`
}

// C is the process-wide configuration, loaded once at startup.
var C Config

// Store is the process-wide table store handle, set by InitStore.
var Store store.TableStore

func Load() {
	// .env is optional outside local dev
	godotenv.Load()
	if err := configor.Load(&C); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.DataBase, d.Port, d.SSLMode)
}

func InitStore() error {
	switch C.Store.Backend {
	case "sheets":
		creds, err := sheetCredentials()
		if err != nil {
			return err
		}
		st, err := store.NewSheetStore(context.Background(), C.Store.SheetURL, creds)
		if err != nil {
			return err
		}
		Store = st
	case "postgres":
		st, err := store.OpenPostgres(C.DB.DSN())
		if err != nil {
			return err
		}
		Store = st
	case "memory":
		Store = store.NewMemoryStore()
	default:
		return fmt.Errorf("unknown store backend %q", C.Store.Backend)
	}
	return nil
}

func sheetCredentials() ([]byte, error) {
	if C.Store.CredentialsJSON != "" {
		return []byte(C.Store.CredentialsJSON), nil
	}
	if C.Store.CredentialsFile != "" {
		b, err := os.ReadFile(C.Store.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read GCP credentials: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("sheets backend needs GCP_CREDENTIALS_JSON or GCP_CREDENTIALS_FILE")
}
