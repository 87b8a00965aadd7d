package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"authcore"`
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Email       EmailConfig
	Auth        AuthConfig
	OAuth       OAuthConfig
	Attest      AttestConfig
	Jaeger      JaegerConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE" envDefault:"dev"`
	Port   int    `env:"SERVER_PORT" envDefault:"8080"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`

	// AppURL is where magic-link and OAuth flows land after success.
	AppURL string `env:"APP_URL" envDefault:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER,required"`
	Password string `env:"DB_PASSWORD,required"`
	Database string `env:"DB_DATABASE,required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `env:"REDIS_PASS" envDefault:""`
}

type EmailConfig struct {
	Server string `env:"EMAIL_SERVER"`
	Port   int    `env:"EMAIL_PORT" envDefault:"587"`
	User   string `env:"EMAIL_USER"`
	Pass   string `env:"EMAIL_PASS"`
}

type AuthConfig struct {
	// PEM-encoded ECDSA P-256 private key. ES256 is the only accepted
	// algorithm, configuring anything else is a startup failure.
	PrivateKeyPEM string `env:"AUTH_PRIVATE_KEY,required"`
	Issuer        string `env:"AUTH_ISSUER" envDefault:""`
	Audience      string `env:"AUTH_AUDIENCE" envDefault:""`

	SessionCookie string `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieDomain  string `env:"COOKIE_DOMAIN" envDefault:""`
}

type OAuthConfig struct {
	RedirectBase string `env:"OAUTH_REDIRECT_BASE" envDefault:"http://localhost:8080"`

	GoogleClientID     string `env:"OAUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"OAUTH_GOOGLE_CLIENT_SECRET"`
	GithubClientID     string `env:"OAUTH_GITHUB_CLIENT_ID"`
	GithubClientSecret string `env:"OAUTH_GITHUB_CLIENT_SECRET"`
}

type AttestConfig struct {
	// Path to a JSON file mapping key id -> PEM-encoded ECDSA public key,
	// the platform's published verification key set.
	KeysFile string `env:"ATTEST_KEYS_FILE"`
	Lenient  bool   `env:"ATTEST_LENIENT" envDefault:"false"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
		Param float64 `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `env:"JAEGER_AGENT_ADDR" envDefault:"localhost:6831"`
	}
}

func MustLoad(envPath string) Config {
	if err := godotenv.Load(envPath); err != nil {
		zap.L().Info("no .env file found, reading environment", zap.String("path", envPath))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
