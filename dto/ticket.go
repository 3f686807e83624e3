package dto

type CreateTicketRequest struct {
	ClienteID            string  `json:"clienteId" validate:"required"`
	TipoElectrodomestico string  `json:"tipoElectrodomestico" validate:"required,oneof=lavadora secadora refrigerador congelador otro"`
	Marca                string  `json:"marca" validate:"omitempty,max=100,clean_text"`
	Modelo               string  `json:"modelo" validate:"omitempty,max=100,clean_text"`
	Problema             string  `json:"problema" validate:"required,clean_text"`
	FechaPreferida       *string `json:"fechaPreferida" validate:"omitempty,datetime=2006-01-02"`
	UbicacionServicio    string  `json:"ubicacionServicio" validate:"omitempty,max=255,clean_text"`
	Urgencia             string  `json:"urgencia" validate:"omitempty,oneof=baja media alta"`
}

func (r CreateTicketRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateTicketRequest struct {
	TipoElectrodomestico *string  `json:"tipoElectrodomestico" validate:"omitempty,oneof=lavadora secadora refrigerador congelador otro"`
	Marca                *string  `json:"marca" validate:"omitempty,max=100,clean_text"`
	Modelo               *string  `json:"modelo" validate:"omitempty,max=100,clean_text"`
	Problema             *string  `json:"problema" validate:"omitempty,clean_text"`
	FechaPreferida       *string  `json:"fechaPreferida" validate:"omitempty,datetime=2006-01-02"`
	UbicacionServicio    *string  `json:"ubicacionServicio" validate:"omitempty,max=255,clean_text"`
	Urgencia             *string  `json:"urgencia" validate:"omitempty,oneof=baja media alta"`
	Estado               *string  `json:"estado" validate:"omitempty,oneof=pendiente programado en_proceso completado cancelado"`
	NotasTecnico         *string  `json:"notasTecnico" validate:"omitempty"`
	CostoEstimado        *float64 `json:"costoEstimado" validate:"omitempty,gte=0"`
	CostoFinal           *float64 `json:"costoFinal" validate:"omitempty,gte=0"`
}

func (r UpdateTicketRequest) Validate() error {
	return GetValidator().Struct(r)
}
