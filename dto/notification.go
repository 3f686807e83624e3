package dto

// TicketNotification is the denormalized snapshot handed to the outbound
// channels after a ticket is persisted.
type TicketNotification struct {
	ServicioID           string
	Cliente              string
	Telefono             string
	Email                string
	Direccion            string
	TipoElectrodomestico string
	Marca                string
	Modelo               string
	Problema             string
	UbicacionServicio    string
	Urgencia             string
	FechaPreferida       string
	FechaSolicitud       string
}

type CostStats struct {
	Date             string  `json:"date"`
	MessagesSent     int     `json:"messagesSent"`
	EstimatedCostUSD float64 `json:"estimatedCostUSD"`
	DailyLimit       float64 `json:"dailyLimit"`
	MonthlyTotal     float64 `json:"monthlyTotal"`
}

type MonthlyCostStats struct {
	MessagesSent     int     `json:"messagesSent"`
	EstimatedCostUSD float64 `json:"estimatedCostUSD"`
	Limit            float64 `json:"limit"`
}

type CostReport struct {
	Daily   CostStats        `json:"daily"`
	Monthly MonthlyCostStats `json:"monthly"`
}
