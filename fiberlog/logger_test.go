package fiberlog

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	t.Run("petición registrada", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	// los tiempos de la petición son locales a cada worker; con -race este
	// caso detecta cualquier estado compartido reintroducido
	t.Run("peticiones concurrentes", func(t *testing.T) {
		var wg sync.WaitGroup
		failures := make(chan error, 16)
		for k := 0; k < 16; k++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
				if err != nil {
					failures <- err
					return
				}
				if resp.StatusCode != fiber.StatusOK {
					failures <- fmt.Errorf("código inesperado: %d", resp.StatusCode)
				}
			}()
		}
		wg.Wait()
		close(failures)
		for err := range failures {
			require.NoError(t, err)
		}
	})
}
