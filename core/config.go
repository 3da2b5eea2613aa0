package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug        bool
		TestMode     bool
		Env          string // DEV (local; default), TEST, QA, PROD
		AppName      string
		Build        string
		SecretKey    []byte
		RollbarToken string

		Server     ServerConfig
		Database   DatabaseConfig
		Classifier ClassifierConfig
	}

	ServerConfig struct {
		Host string
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		DisableTLS    bool
	}

	ClassifierConfig struct {
		Provider string // anthropic | http | keyword
		Endpoint string // http provider only
		APIKey   string
		Model    string
		Timeout  time.Duration
	}
)

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "CampusVoice")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "x2dh&9!wq)pmb$+04=kz&vhxn7(j!w)#*r5(#tg8n^$vbgm3wlu")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbName", "campusvoice")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbDisableTLS", true)
	conf.SetDefault("classifierProvider", "keyword")
	conf.SetDefault("classifierModel", "claude-3-5-haiku-latest")
	conf.SetDefault("classifierTimeout", 10*time.Second)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		SecretKey:    []byte(conf.GetString("secretKey")),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host: conf.GetString("serverHost"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("dbEngine"),
			Name:          conf.GetString("dbName"),
			User:          conf.GetString("dbUser"),
			Password:      conf.GetString("dbPassword"),
			AdminUser:     conf.GetString("dbAdminUser"),
			AdminPassword: conf.GetString("dbAdminPassword"),
			Host:          conf.GetString("dbHost"),
			Port:          conf.GetString("dbPort"),
			DisableTLS:    conf.GetBool("dbDisableTLS"),
		},
		Classifier: ClassifierConfig{
			Provider: conf.GetString("classifierProvider"),
			Endpoint: conf.GetString("classifierEndpoint"),
			APIKey:   conf.GetString("classifierApiKey"),
			Model:    conf.GetString("classifierModel"),
			Timeout:  conf.GetDuration("classifierTimeout"),
		},
	}

	if err := c.check(); err != nil {
		log.Fatalf("config.check: %v", err)
	}
	return c
}

func (c *Config) check() error {
	return vala.BeginValidation().Validate(
		vala.StringNotEmpty(string(c.SecretKey), "secretKey"),
		vala.StringNotEmpty(c.Database.Engine, "dbEngine"),
		vala.StringNotEmpty(c.Database.Name, "dbName"),
		vala.StringNotEmpty(c.Classifier.Provider, "classifierProvider"),
	).Check()
}
