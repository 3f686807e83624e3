package services

import (
	"net/http"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/model"
	"github.com/tecno-hogar/tecnohogar_api/services/repositories"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type TicketService struct {
	context.DefaultService

	sqlSvc          *PostgresService
	notificationSvc *NotificationService

	ticketRepo *repositories.TicketRepository
	clientRepo *repositories.ClientRepository
}

const TICKET_SVC = "ticket_svc"

func (svc TicketService) Id() string {
	return TICKET_SVC
}

func (svc *TicketService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.notificationSvc = svc.Service(NOTIFICATION_SVC).(*NotificationService)
	svc.ticketRepo = repositories.NewTicketRepository(svc.sqlSvc.Db())
	svc.clientRepo = repositories.NewClientRepository(svc.sqlSvc.Db())
	return nil
}

// Create persists the ticket and hands the snapshot to the notification
// dispatcher. Notifications run after the row is durably written and never
// affect the creation outcome.
func (svc *TicketService) Create(req dto.CreateTicketRequest) (*model.Ticket, error) {
	client, err := svc.clientRepo.GetByID(req.ClienteID)
	if err != nil {
		return nil, shared.NewAppError(http.StatusNotFound, "Cliente no encontrado", nil)
	}

	now := time.Now()
	ticket := &model.Ticket{
		ID:                   uuid.New().String(),
		ClienteID:            client.ID,
		TipoElectrodomestico: req.TipoElectrodomestico,
		Marca:                req.Marca,
		Modelo:               req.Modelo,
		Problema:             req.Problema,
		UbicacionServicio:    req.UbicacionServicio,
		Urgencia:             req.Urgencia,
		Estado:               shared.EstadoPendiente,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if ticket.Urgencia == "" {
		ticket.Urgencia = shared.UrgenciaMedia
	}
	if req.FechaPreferida != nil {
		if fecha, err := time.Parse("2006-01-02", *req.FechaPreferida); err == nil {
			ticket.FechaPreferida = &fecha
		}
	}

	if err := svc.ticketRepo.Create(ticket); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Infof("Ticket created: %s for client %s", ticket.ID, client.ID)

	svc.notificationSvc.OnTicketCreated(ticket, client)

	ticket.Cliente = client
	return ticket, nil
}

func (svc *TicketService) List(estado string) ([]model.Ticket, error) {
	tickets, err := svc.ticketRepo.List(estado)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tickets, nil
}

func (svc *TicketService) Get(id string) (*model.Ticket, error) {
	ticket, err := svc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, shared.NewAppError(http.StatusNotFound, "Servicio no encontrado", nil)
	}
	return ticket, nil
}

func (svc *TicketService) ListByClient(clienteID string) ([]model.Ticket, error) {
	tickets, err := svc.ticketRepo.ListByClient(clienteID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tickets, nil
}

func (svc *TicketService) Update(id string, req dto.UpdateTicketRequest) (*model.Ticket, error) {
	ticket, err := svc.Get(id)
	if err != nil {
		return nil, err
	}

	if req.TipoElectrodomestico != nil {
		ticket.TipoElectrodomestico = *req.TipoElectrodomestico
	}
	if req.Marca != nil {
		ticket.Marca = *req.Marca
	}
	if req.Modelo != nil {
		ticket.Modelo = *req.Modelo
	}
	if req.Problema != nil {
		ticket.Problema = *req.Problema
	}
	if req.FechaPreferida != nil {
		if fecha, err := time.Parse("2006-01-02", *req.FechaPreferida); err == nil {
			ticket.FechaPreferida = &fecha
		}
	}
	if req.UbicacionServicio != nil {
		ticket.UbicacionServicio = *req.UbicacionServicio
	}
	if req.Urgencia != nil {
		ticket.Urgencia = *req.Urgencia
	}
	if req.Estado != nil {
		ticket.Estado = *req.Estado
	}
	if req.NotasTecnico != nil {
		ticket.NotasTecnico = *req.NotasTecnico
	}
	if req.CostoEstimado != nil {
		ticket.CostoEstimado = req.CostoEstimado
	}
	if req.CostoFinal != nil {
		ticket.CostoFinal = req.CostoFinal
	}
	ticket.UpdatedAt = time.Now()

	if err := svc.ticketRepo.Update(ticket); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return ticket, nil
}

func (svc *TicketService) Delete(id string) error {
	if _, err := svc.Get(id); err != nil {
		return err
	}
	if err := svc.ticketRepo.Delete(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}
