package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tecno-hogar/tecnohogar_api/shared"
)

// AdminHandler exposes operational counters to the admin panel.
type AdminHandler struct {
	rateLimitSvc RateLimitStatsInterface
	costSvc      CostStatsInterface
}

func NewAdminHandler(rateLimitSvc RateLimitStatsInterface, costSvc CostStatsInterface) *AdminHandler {
	return &AdminHandler{rateLimitSvc: rateLimitSvc, costSvc: costSvc}
}

func (h *AdminHandler) RateLimitStats(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.rateLimitSvc.Stats())
}

func (h *AdminHandler) CostStats(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.costSvc.Stats())
}

func (h *AdminHandler) CostReport(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.costSvc.DetailedReport())
}
