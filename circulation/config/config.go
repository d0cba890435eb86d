package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Circulation holds the policy defaults used until system_settings overrides them.
type Circulation struct {
	LoanPeriodDays     int             `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	FineRatePerDay     decimal.Decimal `yaml:"fineRatePerDay" envconfig:"FINE_RATE_PER_DAY" default:"5"`
	MaxFineBeforeBlock decimal.Decimal `yaml:"maxFineBeforeBlock" envconfig:"MAX_FINE_BEFORE_BLOCK" default:"500"`
}

func (c Circulation) Policy() model.Policy {
	return model.Policy{
		LoanDays:           c.LoanPeriodDays,
		FineRatePerDay:     c.FineRatePerDay,
		MaxFineBeforeBlock: c.MaxFineBeforeBlock,
	}
}

type Config struct {
	Server      HTTPServer  `yaml:"server"`
	Database    postgres.DB `yaml:"db"`
	Kafka       kafka.Config
	Log         logger.Log  `yaml:"log"`
	Auth        auth.Config `yaml:"auth"`
	Circulation Circulation `yaml:"circulation"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Auth.Secret == "" {
			log.Fatal("NewConfig ", auth.ErrEmptySecret)
		}
		if err = config.Circulation.Policy().Validate(); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(config)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	cfg.Auth.Secret = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
