package repositories

import (
	"gorm.io/gorm"

	"github.com/tecno-hogar/tecnohogar_api/model"
)

type TicketRepository struct {
	BaseRepository
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{NewBaseRepository(db)}
}

func (r *TicketRepository) Create(ticket *model.Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *TicketRepository) GetByID(id string) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.Preload("Cliente").First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List returns tickets ordered by preferred visit date, optionally filtered
// by status.
func (r *TicketRepository) List(estado string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	query := r.db.Preload("Cliente").Order("fecha_preferida ASC")
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) ListByClient(clienteID string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.Preload("Cliente").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) Update(ticket *model.Ticket) error {
	return r.db.Save(ticket).Error
}

func (r *TicketRepository) Delete(id string) error {
	return r.db.Delete(&model.Ticket{}, "id = ?", id).Error
}
