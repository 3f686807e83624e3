package dto

type CreateClientRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2,max=255"`
	Telefono  string `json:"telefono" validate:"required,numeric,min=10,max=15"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion" validate:"omitempty,max=500"`
}

func (r CreateClientRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateClientRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=2,max=255"`
	Telefono  *string `json:"telefono" validate:"omitempty,numeric,min=10,max=15"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion" validate:"omitempty,max=500"`
}

func (r UpdateClientRequest) Validate() error {
	return GetValidator().Struct(r)
}
