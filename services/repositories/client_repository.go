package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tecno-hogar/tecnohogar_api/model"
)

type ClientRepository struct {
	BaseRepository
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{NewBaseRepository(db)}
}

func (r *ClientRepository) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) GetByID(id string) (*model.Client, error) {
	var client model.Client
	err := r.db.Preload("Servicios").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) FindByEmail(email string) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) FindByPhone(phone string) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "telefono = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(search string) ([]model.Client, error) {
	var clients []model.Client
	query := r.db.Preload("Servicios").Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("nombre LIKE ? OR telefono LIKE ? OR email LIKE ?", like, like, like)
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

func (r *ClientRepository) Delete(id string) error {
	return r.db.Delete(&model.Client{}, "id = ?", id).Error
}
