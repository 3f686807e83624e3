package model

import "time"

// Ticket is one repair request raised from the public form and worked through
// the admin panel.
type Ticket struct {
	ID                   string     `json:"id" gorm:"primaryKey;type:text;not null"`
	ClienteID            string     `json:"clienteId" gorm:"not null;index;size:64"`
	Cliente              *Client    `json:"cliente,omitempty" gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	TipoElectrodomestico string     `json:"tipoElectrodomestico" gorm:"not null;size:50"`
	Marca                string     `json:"marca,omitempty" gorm:"size:100"`
	Modelo               string     `json:"modelo,omitempty" gorm:"size:100"`
	Problema             string     `json:"problema" gorm:"type:text;not null"`
	FechaPreferida       *time.Time `json:"fechaPreferida,omitempty"`
	UbicacionServicio    string     `json:"ubicacionServicio,omitempty" gorm:"size:255"`
	Urgencia             string     `json:"urgencia" gorm:"not null;size:20;default:media"`
	Estado               string     `json:"estado" gorm:"not null;size:20;default:pendiente;index"`
	NotasTecnico         string     `json:"notasTecnico,omitempty" gorm:"type:text"`
	CostoEstimado        *float64   `json:"costoEstimado,omitempty" gorm:"type:decimal(10,2)"`
	CostoFinal           *float64   `json:"costoFinal,omitempty" gorm:"type:decimal(10,2)"`
	CreatedAt            time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"not null"`
}

func (Ticket) TableName() string {
	return "servicio"
}
