package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talento" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	AzureAD struct {
		TenantID string `default:"" env:"AZURE_TENANT_ID"`
		ClientID string `default:"" env:"AZURE_CLIENT_ID"`
		// Plantillas de las URL del documento de claves; %s es el tenant.
		KeysURLv1       string `default:"https://login.microsoftonline.com/%s/discovery/keys" env:"AZURE_KEYS_URL_V1"`
		KeysURLv2       string `default:"https://login.microsoftonline.com/%s/discovery/v2.0/keys" env:"AZURE_KEYS_URL_V2"`
		KeysCacheTTLMin int    `default:"60" env:"AZURE_KEYS_CACHE_TTL_MIN"`
		HTTPTimeoutSec  int    `default:"10" env:"AZURE_HTTP_TIMEOUT_SEC"`
	}
	Preload struct {
		// Directorio con un CSV por catálogo, consultado sólo al arrancar.
		Dir string `default:"./static_preload" env:"PRELOAD_DIR"`
	}
	Cleanup struct {
		GraceHours  int `default:"72" env:"CLEANUP_GRACE_HOURS"`
		IntervalMin int `default:"60" env:"CLEANUP_INTERVAL_MIN"`
	}
	Admin struct {
		Email  string `default:"" env:"ADMIN_EMAIL"`
		Nombre string `default:"" env:"ADMIN_NAME"`
	}
	Smtp struct {
		User        string `default:"" env:"SMTP_USER"`
		Password    string `default:"" env:"SMTP_PASSWORD"`
		Host        string `default:"" env:"SMTP_HOST"`
		Port        string `default:"" env:"SMTP_PORT"`
		TLSEnabled  *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyEmail string `default:"" env:"SMTP_NOTIFY_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"talento-exports" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
