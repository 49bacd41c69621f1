package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf is the process-wide configuration. It is populated by LoadConfig
// before anything else runs (main, admin CLI, test setup).
var Conf *Config

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		Build    string
		AppName  string
		WorkDir  string

		Server   ServerConfig
		Database DatabaseConfig

		ContactEmail     mail.Address
		DefaultFromEmail mail.Address
		FrontendBaseURL  string

		// AdminPassword is the staff override accepted by the directory
		// password check in core/group (Service.verifyPassword).
		AdminPassword string

		SendgridApiKey string
		RollbarToken   string
	}

	ServerConfig struct {
		Addr            string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Name          string
		DisableTLS    bool
	}
)

func (c DatabaseConfig) Address() string {
	return c.Host + ":" + c.Port
}

// LoadConfig reads configuration from the environment into Conf.
// A `config/.env.<env>` file is loaded first if it exists; env vars are
// prefixed with the current ENV (DEV by default, eg. DEV_SERVERADDR).
func LoadConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Classroom2030")
	v.SetDefault("build", "dev")
	v.SetDefault("frontendBaseUrl", "http://localhost:3000")
	v.SetDefault("contactEmail", "hyoun99@korea.kr")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("adminPassword", "admin2025")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverShutdownTimeout", 10*time.Second)
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbUser", "classroom2030")
	v.SetDefault("dbName", "classroom2030")
	v.SetDefault("dbDisableTls", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "PROD":
		v.SetDefault("debug", false)
		v.SetDefault("dbDisableTls", false)
	}
	v.SetEnvPrefix(env)

	wd := getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		Env:      env,
		Build:    v.GetString("build"),
		AppName:  v.GetString("appName"),
		WorkDir:  wd,
		Server: ServerConfig{
			Addr:            v.GetString("serverAddr"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("dbEngine"),
			Host:          v.GetString("dbHost"),
			Port:          v.GetString("dbPort"),
			User:          v.GetString("dbUser"),
			Password:      v.GetString("dbPassword"),
			AdminUser:     v.GetString("dbAdminUser"),
			AdminPassword: v.GetString("dbAdminPassword"),
			Name:          v.GetString("dbName"),
			DisableTLS:    v.GetBool("dbDisableTls"),
		},
		ContactEmail:     mail.Address{Address: v.GetString("contactEmail")},
		DefaultFromEmail: mail.Address{Address: v.GetString("defaultFromEmail")},
		FrontendBaseURL:  v.GetString("frontendBaseUrl"),
		AdminPassword:    v.GetString("adminPassword"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
	}
	return Conf
}

// getwd walks up from the working directory to the directory holding go.mod.
// go-test changes the working directory to the package being run; configs
// must still resolve from the project root.
func getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd // not in a module; fall back to cwd
		}
		currDir = newDir
	}
}
