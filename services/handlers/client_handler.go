package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type ClientHandler struct {
	clientSvc ClientServiceInterface
}

func NewClientHandler(clientSvc ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	client, err := h.clientSvc.Create(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Created", client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientSvc.List(c.Query("search"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	client, err := h.clientSvc.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	client, err := h.clientSvc.Update(c.Params("id"), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.clientSvc.Delete(c.Params("id")); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
