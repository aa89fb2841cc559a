package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockalerts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProduct ProductCreator
	LowStock      LowStockAlerter
	Logger        *logger.Logger
	ServiceName   string
	// JWTSecret vacío deja /api abierto.
	JWTSecret string
	JWTIssuer string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	app.Use(RequestID(), RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	productHandler := NewProductHandler(deps.CreateProduct, log)
	api.Post("/products", productHandler.Create)

	alertHandler := NewAlertHandler(deps.LowStock, log)
	api.Get("/companies/:companyId/alerts/low-stock", alertHandler.LowStock)
}
