package model

import "time"

type Client struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Nombre    string    `json:"nombre" gorm:"not null;size:255"`
	Telefono  string    `json:"telefono" gorm:"not null;size:20;index"`
	Email     string    `json:"email,omitempty" gorm:"size:255;index"`
	Direccion string    `json:"direccion,omitempty" gorm:"type:text"`
	Servicios []Ticket  `json:"servicios,omitempty" gorm:"foreignKey:ClienteID"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Client) TableName() string {
	return "cliente"
}
