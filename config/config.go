package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST"`
	Port   string `envconfig:"PORT"`
	Domain string `envconfig:"DOMAIN"`
	Prefix string `envconfig:"PREFIX"`
	Mode   Mode   `envconfig:"MODE"`
	Mysql  Mysql
	Redis  Redis
	JWT    JWT
	Log    Log `mapstructure:"Log"`
	Sentry Sentry
	OTel   OTel `mapstructure:"OTel"`
	S3     S3
	Resend Resend
	Admin  Admin
}

// Admin is the bootstrap account. When set, the account is created and
// granted admin membership at startup so a fresh deployment can sign
// in at all; further accounts are provisioned through the admin API.
type Admin struct {
	Email    string `envconfig:"EMAIL" mapstructure:"email"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // log file path, empty means stdout only
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // max size per file (MB)
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // days kept
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style"`
}

type Resend struct {
	APIKey string `envconfig:"API_KEY" mapstructure:"api_key"`
	From   string `envconfig:"FROM" mapstructure:"from"`
}
