package fiberlog

import "github.com/sirupsen/logrus"

// Config parametriza el middleware de log de peticiones.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault se usa cuando no se entrega configuración explícita.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
	},
}
