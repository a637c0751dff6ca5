package config

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	Local        bool   `yaml:"local"`
	PresignTTL   string `yaml:"presign_ttl"`
	MaxImageSize int64  `yaml:"max_image_size"`
}

// JWTConfig : секреты и алгоритмы задаются отдельно для access и refresh токенов
type JWTConfig struct {
	AccessSecret         string `yaml:"access_secret"`
	RefreshSecret        string `yaml:"refresh_secret"`
	AccessAlgorithm      string `yaml:"access_algorithm"`
	RefreshAlgorithm     string `yaml:"refresh_algorithm"`
	AccessTokenTTL       string `yaml:"access_token_ttl"`
	RefreshTokenTTL      string `yaml:"refresh_token_ttl"`
	IssueRequestedScopes bool   `yaml:"issue_requested_scopes"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	Topic      string   `yaml:"topic"`
	GroupID    string   `yaml:"group_id"`
	MaxRetries int      `yaml:"max_retries"`
	RetryDelay string   `yaml:"retry_delay"`
	// MaxMessageBytes : лимит writer и max.message.bytes топика, задачи s3_upload несут тело в base64
	MaxMessageBytes int64 `yaml:"max_message_bytes"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// AdminConfig : учетная запись администратора, создаваемая при старте
type AdminConfig struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
