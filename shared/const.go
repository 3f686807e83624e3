package shared

const (
	UserID   = "user_id"
	Username = "username"
	UserRole = "user_role"

	RoleAdmin = "admin"

	ApplianceLavadora     = "lavadora"
	ApplianceSecadora     = "secadora"
	ApplianceRefrigerador = "refrigerador"
	ApplianceCongelador   = "congelador"
	ApplianceOtro         = "otro"

	UrgenciaBaja  = "baja"
	UrgenciaMedia = "media"
	UrgenciaAlta  = "alta"

	EstadoPendiente  = "pendiente"
	EstadoProgramado = "programado"
	EstadoEnProceso  = "en_proceso"
	EstadoCompletado = "completado"
	EstadoCancelado  = "cancelado"
)
