package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN         string        `env:"DATABASE_DSN,required=true"`
	RedisURL            string        `env:"REDIS_URL,required=true"`
	TwilioAccountSID    string        `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken     string        `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber    string        `env:"TWILIO_FROM_NUMBER"`
	TickInterval        time.Duration `env:"TICK_INTERVAL,default=1h"`
	DispatchConcurrency int           `env:"DISPATCH_CONCURRENCY,default=8"`
	SMSRateLimitPerSec  int           `env:"SMS_RATE_LIMIT_PER_SEC,default=10"`
	APIPort             int           `env:"API_PORT,default=8000"`
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
