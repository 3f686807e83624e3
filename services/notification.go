package services

import (
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/model"
)

type sheetAppender interface {
	AppendRow(data dto.TicketNotification) (skipped bool, err error)
}

type whatsAppSender interface {
	Send(data dto.TicketNotification) (paid bool, err error)
}

type costGuard interface {
	CanSend() (bool, string, dto.CostStats)
	RecordSent()
}

// NotificationService fans a persisted ticket out to the spreadsheet log and
// the WhatsApp alert. Dispatch is fire-and-forget: the creation response
// never waits on it and no failure here reaches the caller. Failed sends are
// terminal, there are no retries.
type NotificationService struct {
	context.DefaultService

	sheets   sheetAppender
	whatsapp whatsAppSender
	costs    costGuard

	location *time.Location
}

const NOTIFICATION_SVC = "notification_svc"

func (svc NotificationService) Id() string {
	return NOTIFICATION_SVC
}

func (svc *NotificationService) Configure(ctx *context.Context) error {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		log.WithError(err).Warn("Falling back to UTC for notification timestamps")
		loc = time.UTC
	}
	svc.location = loc

	return svc.DefaultService.Configure(ctx)
}

func (svc *NotificationService) Start() error {
	svc.sheets = svc.Service(SHEETS_SVC).(*SheetsService)
	svc.whatsapp = svc.Service(WHATSAPP_SVC).(*WhatsAppService)
	svc.costs = svc.Service(COST_MONITOR_SVC).(*CostMonitorService)
	return nil
}

// OnTicketCreated builds the denormalized snapshot and dispatches it in the
// background. Call only after the ticket row is durably persisted.
func (svc *NotificationService) OnTicketCreated(ticket *model.Ticket, client *model.Client) {
	payload := svc.buildPayload(ticket, client)
	go svc.Dispatch(payload)
}

func (svc *NotificationService) buildPayload(ticket *model.Ticket, client *model.Client) dto.TicketNotification {
	payload := dto.TicketNotification{
		ServicioID:           ticket.ID,
		Cliente:              client.Nombre,
		Telefono:             client.Telefono,
		Email:                client.Email,
		Direccion:            client.Direccion,
		TipoElectrodomestico: ticket.TipoElectrodomestico,
		Marca:                ticket.Marca,
		Modelo:               ticket.Modelo,
		Problema:             ticket.Problema,
		UbicacionServicio:    ticket.UbicacionServicio,
		Urgencia:             ticket.Urgencia,
		FechaSolicitud:       time.Now().In(svc.location).Format("02/01/2006 15:04"),
	}

	if ticket.FechaPreferida != nil {
		payload.FechaPreferida = ticket.FechaPreferida.Format("02/01/2006")
	}

	return payload
}

// Dispatch attempts both channels, isolating each failure at its call site so
// one channel's outage never affects the other.
func (svc *NotificationService) Dispatch(payload dto.TicketNotification) {
	skipped, err := svc.sheets.AppendRow(payload)
	switch {
	case err != nil:
		log.WithError(err).Errorf("Error saving to Google Sheets for servicio %s", payload.ServicioID)
		notificationFailures.WithLabelValues("sheets").Inc()
	case !skipped:
		log.Infof("Google Sheets updated for servicio %s", payload.ServicioID)
	}

	svc.dispatchWhatsApp(payload)
}

func (svc *NotificationService) dispatchWhatsApp(payload dto.TicketNotification) {
	allowed, reason, stats := svc.costs.CanSend()
	if !allowed {
		log.Warnf("WhatsApp skipped for servicio %s | %s | messages today: %d",
			payload.ServicioID, reason, stats.MessagesSent)
		return
	}

	paid, err := svc.whatsapp.Send(payload)
	if err != nil {
		log.WithError(err).Errorf("Error sending WhatsApp for servicio %s", payload.ServicioID)
		notificationFailures.WithLabelValues("whatsapp").Inc()
		return
	}

	if paid {
		svc.costs.RecordSent()
	}
}
