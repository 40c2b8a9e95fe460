package core

import (
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		AppName  string
		Build    string

		// APIBaseURL points at the EMS backend, e.g. http://127.0.0.1:8000/api.
		// It is the only knob a deployment must set.
		APIBaseURL string

		RollbarToken string

		Server ServerConfig
		Cookie CookieConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		LoginPath       string
		AdminPathPrefix string
		ShutdownTimeout time.Duration
	}

	CookieConfig struct {
		TenantMetaTTL       time.Duration
		InstituteProfileTTL time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Ihsan EMS")
	v.SetDefault("build", "dev")
	v.SetDefault("apiBaseUrl", "http://127.0.0.1:8000/api")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddress", ":3000")
	v.SetDefault("loginPath", "/auth/login")
	v.SetDefault("adminPathPrefix", "/admin")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("tenantMetaTtl", 12*time.Hour)
	v.SetDefault("instituteProfileTtl", 12*time.Hour)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Env:          env,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		APIBaseURL:   strings.TrimRight(v.GetString("apiBaseUrl"), "/"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Address:         v.GetString("serverAddress"),
			LoginPath:       v.GetString("loginPath"),
			AdminPathPrefix: v.GetString("adminPathPrefix"),
			ShutdownTimeout: v.GetDuration("shutdownTimeout"),
		},
		Cookie: CookieConfig{
			TenantMetaTTL:       v.GetDuration("tenantMetaTtl"),
			InstituteProfileTTL: v.GetDuration("instituteProfileTtl"),
		},
	}

	if err := conf.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return conf
}

func (conf *Config) Validate() error {
	baseURL, err := url.Parse(conf.APIBaseURL)
	if err != nil {
		return errors.Wrap(err, "parsing apiBaseUrl")
	}
	return vala.BeginValidation().Validate(
		vala.StringNotEmpty(conf.APIBaseURL, "apiBaseUrl"),
		vala.StringNotEmpty(baseURL.Scheme, "apiBaseUrl scheme"),
		vala.StringNotEmpty(baseURL.Host, "apiBaseUrl host"),
		vala.StringNotEmpty(conf.Server.Address, "serverAddress"),
		vala.StringNotEmpty(conf.Server.LoginPath, "loginPath"),
		vala.StringNotEmpty(conf.Server.AdminPathPrefix, "adminPathPrefix"),
	).Check()
}
