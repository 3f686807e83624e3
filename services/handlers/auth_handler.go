package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}

// Profile echoes the verified identity from the bearer token.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return shared.ResponseOK(c, dto.ProfileResponse{
		UserID:   localString(c, shared.UserID),
		Username: localString(c, shared.Username),
		Role:     localString(c, shared.UserRole),
	})
}

// Verify returns 200 when the auth middleware accepted the token.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return shared.ResponseOK(c, fiber.Map{"valid": true})
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}
