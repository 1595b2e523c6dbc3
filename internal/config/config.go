package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultPassSecret = "change-me-pass-secret"
)

// Config is loaded once at startup and passed to every component that needs it.
// Nothing else in the service reads the environment.
type Config struct {
	Port        string `env:"PORT,default=8080"`
	AppEnv      string `env:"APP_ENV,default=development"`
	MongoURI    string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDB     string `env:"MONGO_DB,default=storefront"`
	FrontendURL string `env:"FRONTEND_URL,default=http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// JWTSecret signs access tokens; PassSecret peppers stored credentials.
	JWTSecret  string        `env:"JWT_SECRET,default=change-me-jwt-secret"`
	JWTTTL     time.Duration `env:"JWT_TTL,default=72h"`
	PassSecret string        `env:"PASS_SECRET,default=change-me-pass-secret"`
	BcryptCost int           `env:"BCRYPT_COST,default=10"`

	AuthRatePerMinute int `env:"AUTH_RATE_PER_MINUTE,default=10"`
	AuthRateBurst     int `env:"AUTH_RATE_BURST,default=5"`

	CloudinaryCloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey       string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret    string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryUploadFolder string `env:"CLOUDINARY_UPLOAD_FOLDER,default=storefront"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would run with unsafe or unusable values.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.PassSecret == "" {
		return errors.New("JWT_SECRET and PASS_SECRET must be set")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.IsProduction() && (c.JWTSecret == defaultJWTSecret || c.PassSecret == defaultPassSecret) {
		return errors.New("refusing to start in production with default secrets")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// CloudinaryEnabled reports whether all Cloudinary credentials are present.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
