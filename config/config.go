package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey  string        `mapstructure:"secret_key"`
		AccessTTL  time.Duration `mapstructure:"access_ttl"`
		RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
	} `mapstructure:"jwt"`
	Password struct {
		BcryptCost int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"password"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig is the per-endpoint-class budget table. It is loaded once
// and never mutated afterwards; each route group is assigned one strategy.
type RateLimitConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Login         Strategy      `mapstructure:"login"`
	Refresh       Strategy      `mapstructure:"refresh"`
	Authenticated Strategy      `mapstructure:"authenticated"`
	Public        Strategy      `mapstructure:"public"`
}

type Strategy struct {
	Name        string        `mapstructure:"name"`
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("jwt.access_ttl", 15*time.Minute)
	viper.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	viper.SetDefault("password.bcrypt_cost", 12)

	viper.SetDefault("rate_limit.sweep_interval", time.Minute)
	viper.SetDefault("rate_limit.login.name", "login")
	viper.SetDefault("rate_limit.login.max_requests", 10)
	viper.SetDefault("rate_limit.login.window", 15*time.Minute)
	viper.SetDefault("rate_limit.refresh.name", "refresh")
	viper.SetDefault("rate_limit.refresh.max_requests", 20)
	viper.SetDefault("rate_limit.refresh.window", 15*time.Minute)
	viper.SetDefault("rate_limit.authenticated.name", "authenticated")
	viper.SetDefault("rate_limit.authenticated.max_requests", 100)
	viper.SetDefault("rate_limit.authenticated.window", time.Minute)
	viper.SetDefault("rate_limit.public.name", "public")
	viper.SetDefault("rate_limit.public.max_requests", 30)
	viper.SetDefault("rate_limit.public.window", time.Minute)
}
