package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server         ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Kafka          KafkaConfig    `yaml:"kafka"`
	SMTP           SMTPConfig     `yaml:"smtp"`
	Admin          AdminConfig    `yaml:"admin"`
	Log            LogConfig      `yaml:"log"`
}

var supportedAlgorithms = map[string]bool{"HS256": true, "HS384": true, "HS512": true}

// LoadConfig : читает yaml, затем накладывает .env и переменные окружения
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *AppConfig) applyEnv() {
	envString(&c.Server.Addr, "SERVER_ADDR")
	envString(&c.DatabaseConfig.DSN, "DATABASE_DSN")
	envString(&c.RedisConfig.Addr, "REDIS_ADDR")
	envString(&c.RedisConfig.Password, "REDIS_PASSWORD")
	envString(&c.S3Config.Bucket, "S3_BUCKET")
	envString(&c.S3Config.Region, "S3_REGION")
	envString(&c.S3Config.Endpoint, "S3_ENDPOINT")
	envString(&c.JWT.AccessSecret, "JWT_ACCESS_SECRET")
	envString(&c.JWT.RefreshSecret, "JWT_REFRESH_SECRET")
	if alg := os.Getenv("JWT_ALGORITHM"); alg != "" {
		c.JWT.AccessAlgorithm = alg
		c.JWT.RefreshAlgorithm = alg
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		c.Kafka.Brokers = splitCSV(brokers)
	}
	envString(&c.SMTP.Host, "SMTP_HOST")
	envString(&c.SMTP.Username, "SMTP_USERNAME")
	envString(&c.SMTP.Password, "SMTP_PASSWORD")
	envString(&c.SMTP.From, "SMTP_FROM")
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		c.SMTP.Port = port
	}
	envString(&c.Admin.Username, "ADMIN_USERNAME")
	envString(&c.Admin.Email, "ADMIN_EMAIL")
	envString(&c.Admin.Password, "ADMIN_PASSWORD")
	envString(&c.Log.Level, "LOG_LEVEL")
}

func (c *AppConfig) applyDefaults() {
	defaultString(&c.Server.Addr, ":8080")
	defaultString(&c.Server.ShutdownTimeout, "5s")
	defaultString(&c.RedisConfig.Addr, "localhost:6379")
	defaultString(&c.S3Config.Region, "eu-central-1")
	defaultString(&c.S3Config.PresignTTL, "15m")
	if c.S3Config.MaxImageSize == 0 {
		c.S3Config.MaxImageSize = 5 << 20
	}
	defaultString(&c.JWT.AccessAlgorithm, "HS256")
	defaultString(&c.JWT.RefreshAlgorithm, "HS256")
	defaultString(&c.JWT.AccessTokenTTL, "30m")
	defaultString(&c.JWT.RefreshTokenTTL, "3h")
	if len(c.Kafka.Brokers) == 0 {
		c.Kafka.Brokers = []string{"localhost:9092"}
	}
	defaultString(&c.Kafka.Topic, "travel-planner.tasks")
	defaultString(&c.Kafka.GroupID, "travel-planner-worker")
	if c.Kafka.MaxRetries == 0 {
		c.Kafka.MaxRetries = 3
	}
	defaultString(&c.Kafka.RetryDelay, "5s")
	if c.Kafka.MaxMessageBytes == 0 {
		c.Kafka.MaxMessageBytes = 8 << 20
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	defaultString(&c.Log.Level, "info")
	defaultString(&c.Log.Format, "json")
}

// Validate : проверяет конфигурацию до запуска приложения
func (c *AppConfig) Validate() error {
	if c.DatabaseConfig.DSN == "" {
		return errors.New("не задан DSN базы данных")
	}
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return errors.New("не заданы секреты JWT")
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return errors.New("секреты access и refresh токенов должны различаться")
	}
	for _, alg := range []string{c.JWT.AccessAlgorithm, c.JWT.RefreshAlgorithm} {
		if !supportedAlgorithms[alg] {
			return fmt.Errorf("неподдерживаемый алгоритм подписи: %s", alg)
		}
	}
	durations := map[string]string{
		"jwt.access_token_ttl":  c.JWT.AccessTokenTTL,
		"jwt.refresh_token_ttl": c.JWT.RefreshTokenTTL,
		"s3Config.presign_ttl":  c.S3Config.PresignTTL,
		"kafka.retry_delay":     c.Kafka.RetryDelay,
		"server.shutdown":       c.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("некорректная длительность %s: %q", name, value)
		}
	}
	if c.Kafka.MaxRetries < 0 {
		return errors.New("kafka.max_retries не может быть отрицательным")
	}
	if c.S3Config.Bucket == "" {
		return errors.New("не задан бакет S3")
	}
	if c.S3Config.MaxImageSize <= 0 {
		return errors.New("s3Config.max_image_size должен быть положительным")
	}
	if need := EncodedTaskSize(c.S3Config.MaxImageSize); need > c.Kafka.MaxMessageBytes {
		return fmt.Errorf("kafka.max_message_bytes (%d) меньше задачи загрузки изображения максимального размера (%d)",
			c.Kafka.MaxMessageBytes, need)
	}
	return nil
}

// taskEnvelopeOverhead : имя задачи, ключ, content type и поля конверта
const taskEnvelopeOverhead = 4 << 10

// EncodedTaskSize : размер сообщения s3_upload для тела заданного размера (base64 + конверт)
func EncodedTaskSize(bodySize int64) int64 {
	return (bodySize+2)/3*4 + taskEnvelopeOverhead
}

func (j JWTConfig) AccessTTL() time.Duration  { return mustDuration(j.AccessTokenTTL) }
func (j JWTConfig) RefreshTTL() time.Duration { return mustDuration(j.RefreshTokenTTL) }
func (s S3Config) PresignExpiry() time.Duration {
	return mustDuration(s.PresignTTL)
}
func (k KafkaConfig) RetryBackoff() time.Duration {
	return mustDuration(k.RetryDelay)
}
func (s ServerConfig) Shutdown() time.Duration {
	return mustDuration(s.ShutdownTimeout)
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	db, err := NewDatabaseConnection("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return db, nil
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}

// mustDuration вызывается только после Validate
func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func envString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func defaultString(target *string, value string) {
	if *target == "" {
		*target = value
	}
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
