package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/model"
)

type AuthServiceInterface interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
}

type ClientServiceInterface interface {
	Create(req dto.CreateClientRequest) (*model.Client, error)
	List(search string) ([]model.Client, error)
	Get(id string) (*model.Client, error)
	Update(id string, req dto.UpdateClientRequest) (*model.Client, error)
	Delete(id string) error
}

type TicketServiceInterface interface {
	Create(req dto.CreateTicketRequest) (*model.Ticket, error)
	List(estado string) ([]model.Ticket, error)
	Get(id string) (*model.Ticket, error)
	ListByClient(clienteID string) ([]model.Ticket, error)
	Update(id string, req dto.UpdateTicketRequest) (*model.Ticket, error)
	Delete(id string) error
}

// ProfanityGuardInterface is the slice of the abuse tracker the ticket
// handler needs to report validation failures.
type ProfanityGuardInterface interface {
	RecordAttempt(clientKey string)
	AttemptCount(clientKey string) int
	MaxAttempts() int
	BlockMinutes() int
}

type RateLimitStatsInterface interface {
	Stats() dto.RateLimitStats
}

type CostStatsInterface interface {
	Stats() dto.CostReport
	DetailedReport() string
}
