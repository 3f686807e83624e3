package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type TicketHandler struct {
	ticketSvc TicketServiceInterface
	guard     ProfanityGuardInterface
}

func NewTicketHandler(ticketSvc TicketServiceInterface, guard ProfanityGuardInterface) *TicketHandler {
	return &TicketHandler{ticketSvc: ticketSvc, guard: guard}
}

// Create is the public form endpoint. Profanity validation failures are
// reported to the abuse tracker; the block itself is enforced by the
// admission middleware on the client's next request.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		h.reportProfanity(c, &validationResp)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	ticket, err := h.ticketSvc.Create(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Created", ticket)
}

func (h *TicketHandler) reportProfanity(c *fiber.Ctx, resp *dto.ValidationErrorResponse) {
	fields := dto.ProfanityFields(resp.Errors)
	if len(fields) == 0 {
		return
	}

	clientIP := shared.ClientIP(c)
	h.guard.RecordAttempt(clientIP)
	count := h.guard.AttemptCount(clientIP)
	maxAttempts := h.guard.MaxAttempts()

	log.Warnf("Profanity attempt detected from IP: %s | Attempt %d/%d | Endpoint: %s %s | User-Agent: %s",
		clientIP, count, maxAttempts, c.Method(), c.Path(), c.Get("User-Agent"))
	log.Warnf("Fields with profanity: %s | IP: %s", strings.Join(fields, ", "), clientIP)

	if count >= 2 && count < maxAttempts {
		remaining := maxAttempts - count
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"⚠️ Advertencia: %d intento(s) restante(s) antes de bloqueo temporal de %d minutos.",
			remaining, h.guard.BlockMinutes()))
	}

	if count >= maxAttempts {
		log.Errorf("IP %s has been temporarily blocked due to repeated profanity attempts", clientIP)
	}
}

func (h *TicketHandler) List(c *fiber.Ctx) error {
	tickets, err := h.ticketSvc.List(c.Query("estado"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, tickets)
}

func (h *TicketHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.ticketSvc.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, ticket)
}

func (h *TicketHandler) ListByClient(c *fiber.Ctx) error {
	tickets, err := h.ticketSvc.ListByClient(c.Params("clienteId"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, tickets)
}

func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	ticket, err := h.ticketSvc.Update(c.Params("id"), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, ticket)
}

func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.ticketSvc.Delete(c.Params("id")); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
