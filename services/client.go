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

type ClientService struct {
	context.DefaultService

	sqlSvc *PostgresService

	clientRepo *repositories.ClientRepository
}

const CLIENT_SVC = "client_svc"

func (svc ClientService) Id() string {
	return CLIENT_SVC
}

func (svc *ClientService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.clientRepo = repositories.NewClientRepository(svc.sqlSvc.Db())
	return nil
}

// Create registers a client, deduplicating by email first and phone second so
// repeat requesters from the public form reuse their existing record.
func (svc *ClientService) Create(req dto.CreateClientRequest) (*model.Client, error) {
	if req.Email != "" {
		existing, err := svc.clientRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	if req.Email == "" && req.Telefono != "" {
		existing, err := svc.clientRepo.FindByPhone(req.Telefono)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	now := time.Now()
	client := &model.Client{
		ID:        uuid.New().String(),
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.clientRepo.Create(client); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Infof("Client created: %s (%s)", client.Nombre, client.ID)
	return client, nil
}

func (svc *ClientService) List(search string) ([]model.Client, error) {
	clients, err := svc.clientRepo.List(search)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return clients, nil
}

func (svc *ClientService) Get(id string) (*model.Client, error) {
	client, err := svc.clientRepo.GetByID(id)
	if err != nil {
		return nil, shared.NewAppError(http.StatusNotFound, "Cliente no encontrado", nil)
	}
	return client, nil
}

func (svc *ClientService) Update(id string, req dto.UpdateClientRequest) (*model.Client, error) {
	client, err := svc.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		client.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		client.Telefono = *req.Telefono
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Direccion != nil {
		client.Direccion = *req.Direccion
	}
	client.UpdatedAt = time.Now()

	if err := svc.clientRepo.Update(client); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return client, nil
}

func (svc *ClientService) Delete(id string) error {
	if _, err := svc.Get(id); err != nil {
		return err
	}
	if err := svc.clientRepo.Delete(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}
