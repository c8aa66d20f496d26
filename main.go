package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	apiv1 "talento-backend/controllers/v1"
	"talento-backend/fiberlog"
	"talento-backend/initializers"
	"talento-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	// rutas públicas, antes del middleware de autenticación
	apiv1.InitPublicDeletionRequestRouters(apiV1)

	apiV1.Use(middleware.Authenticated())
	apiv1.InitCandidateApiRouters(apiV1)
	apiv1.InitReportApiRouters(apiV1)
	apiv1.InitDeletionRequestApiRouters(apiV1)
	apiv1.InitUserApiRouters(apiV1)
	apiv1.InitDictApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("apagando el servicio...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("error apagando el servidor HTTP")
		}
		time.Sleep(time.Second)
		log.Info("apagado completado")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("servidor HTTP detenido")
}
