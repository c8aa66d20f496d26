package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New construye el middleware de log: una entrada por petición con los tags
// configurados; los preflight OPTIONS no se registran.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		// data es por petición; sólo el pid se comparte entre workers
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		const message = "petición api"
		fields := collectFields(ftm, c, d)
		if cfg.Logger == nil {
			log.WithFields(fields).Info(message)
			return err
		}
		entry := cfg.Logger.WithFields(fields)
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entry.Warn(message)
		} else {
			entry.Info(message)
		}
		return err
	}
}

// collectFields evalúa cada tag sobre la petición; los strings vacíos se
// omiten de la entrada.
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for key, tag := range ftm {
		value := tag(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[key] = strValue
			}
			continue
		}
		fields[key] = value
	}
	return fields
}
