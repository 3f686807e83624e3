package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tecno-hogar/tecnohogar_api/services/handlers"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	clientSvc    *ClientService
	ticketSvc    *TicketService
	rateLimitSvc *RateLimitService
	guardSvc     *ProfanityGuardService
	costSvc      *CostMonitorService
	monitorSvc   *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.clientSvc = svc.Service(CLIENT_SVC).(*ClientService)
	svc.ticketSvc = svc.Service(TICKET_SVC).(*TicketService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.guardSvc = svc.Service(PROFANITY_GUARD_SVC).(*ProfanityGuardService)
	svc.costSvc = svc.Service(COST_MONITOR_SVC).(*CostMonitorService)
	svc.monitorSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler:          svc.handleError,
		DisableStartupMessage: os.Getenv("LOG_LEVEL") == "INFO",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(svc.monitorSvc.Middleware())

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	clientHandler := handlers.NewClientHandler(svc.clientSvc)
	ticketHandler := handlers.NewTicketHandler(svc.ticketSvc, svc.guardSvc)
	adminHandler := handlers.NewAdminHandler(svc.rateLimitSvc, svc.costSvc)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tecno Hogar API")
	})
	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", svc.authSvc.RequiredAuth(), authHandler.Profile)
	auth.Get("/verify", svc.authSvc.RequiredAuth(), authHandler.Verify)

	// Public form flow: client dedupe-create, then the guarded ticket create.
	clientes := v1.Group("/clientes")
	clientes.Post("/", clientHandler.Create)
	clientes.Get("/", svc.authSvc.RequiredAuth(), clientHandler.List)
	clientes.Get("/:id", svc.authSvc.RequiredAuth(), clientHandler.Get)
	clientes.Patch("/:id", svc.authSvc.RequiredAuth(), clientHandler.Update)
	clientes.Delete("/:id", svc.authSvc.RequiredAuth(), clientHandler.Delete)

	servicios := v1.Group("/servicios")
	servicios.Post("/",
		svc.rateLimitSvc.Limit(),
		svc.guardSvc.CheckBlocked(),
		ticketHandler.Create)
	servicios.Get("/", svc.authSvc.RequiredAuth(), ticketHandler.List)
	servicios.Get("/cliente/:clienteId", svc.authSvc.RequiredAuth(), ticketHandler.ListByClient)
	servicios.Get("/:id", svc.authSvc.RequiredAuth(), ticketHandler.Get)
	servicios.Patch("/:id", svc.authSvc.RequiredAuth(), ticketHandler.Update)
	servicios.Delete("/:id", svc.authSvc.RequiredAuth(), ticketHandler.Delete)

	admin := v1.Group("/admin", svc.authSvc.RequiredAuth())
	admin.Get("/rate-limit/stats", adminHandler.RateLimitStats)
	admin.Get("/costs", adminHandler.CostStats)
	admin.Get("/costs/report", adminHandler.CostReport)

	app.Use(func(c *fiber.Ctx) error {
		return svc.handleError(c, errors.New("page not found"))
	})

	svc.app = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	if err.Error() == "page not found" {
		return shared.ResponseNotFound(c)
	}

	return shared.ResponseInternalError(c, err)
}
