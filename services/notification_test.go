package services

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/model"
)

type fakeSheets struct {
	rows    []dto.TicketNotification
	skipped bool
	err     error
}

func (f *fakeSheets) AppendRow(data dto.TicketNotification) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.skipped {
		return true, nil
	}
	f.rows = append(f.rows, data)
	return false, nil
}

type fakeWhatsApp struct {
	sent []dto.TicketNotification
	paid bool
	err  error
}

func (f *fakeWhatsApp) Send(data dto.TicketNotification) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.sent = append(f.sent, data)
	return f.paid, nil
}

type fakeCostGuard struct {
	allowed  bool
	reason   string
	recorded int
}

func (f *fakeCostGuard) CanSend() (bool, string, dto.CostStats) {
	return f.allowed, f.reason, dto.CostStats{}
}

func (f *fakeCostGuard) RecordSent() {
	f.recorded++
}

func newTestNotifier(sheets *fakeSheets, whatsapp *fakeWhatsApp, costs *fakeCostGuard) *NotificationService {
	return &NotificationService{
		sheets:   sheets,
		whatsapp: whatsapp,
		costs:    costs,
		location: time.UTC,
	}
}

func testTicket() (*model.Ticket, *model.Client) {
	preferida := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	client := &model.Client{
		ID:        "c-1",
		Nombre:    "Ana López",
		Telefono:  "5512345678",
		Email:     "ana@example.com",
		Direccion: "Av. Reforma 100",
	}
	ticket := &model.Ticket{
		ID:                   "s-1",
		ClienteID:            client.ID,
		TipoElectrodomestico: "lavadora",
		Marca:                "LG",
		Modelo:               "WM2000",
		Problema:             "No centrifuga",
		UbicacionServicio:    "Cocina",
		Urgencia:             "alta",
		FechaPreferida:       &preferida,
	}
	return ticket, client
}

func TestNotificationPayloadSnapshot(t *testing.T) {
	svc := newTestNotifier(&fakeSheets{}, &fakeWhatsApp{}, &fakeCostGuard{allowed: true})
	ticket, client := testTicket()

	payload := svc.buildPayload(ticket, client)

	if payload.ServicioID != "s-1" || payload.Cliente != "Ana López" {
		t.Errorf("unexpected snapshot: %+v", payload)
	}
	if payload.Telefono != "5512345678" || payload.Direccion != "Av. Reforma 100" {
		t.Errorf("client fields not copied: %+v", payload)
	}
	if payload.FechaPreferida != "15/09/2026" {
		t.Errorf("expected formatted fecha preferida, got %q", payload.FechaPreferida)
	}
	if payload.FechaSolicitud == "" {
		t.Error("expected a request timestamp")
	}
}

func TestNotificationPayloadWithoutPreferredDate(t *testing.T) {
	svc := newTestNotifier(&fakeSheets{}, &fakeWhatsApp{}, &fakeCostGuard{allowed: true})
	ticket, client := testTicket()
	ticket.FechaPreferida = nil

	payload := svc.buildPayload(ticket, client)
	if payload.FechaPreferida != "" {
		t.Errorf("expected empty fecha preferida, got %q", payload.FechaPreferida)
	}
}

func TestNotificationDispatchBothChannels(t *testing.T) {
	sheets := &fakeSheets{}
	whatsapp := &fakeWhatsApp{paid: true}
	costs := &fakeCostGuard{allowed: true}
	svc := newTestNotifier(sheets, whatsapp, costs)

	svc.Dispatch(dto.TicketNotification{ServicioID: "s-2"})

	if len(sheets.rows) != 1 {
		t.Errorf("expected 1 sheet row, got %d", len(sheets.rows))
	}
	if len(whatsapp.sent) != 1 {
		t.Errorf("expected 1 whatsapp send, got %d", len(whatsapp.sent))
	}
	if costs.recorded != 1 {
		t.Errorf("paid send must be recorded once, got %d", costs.recorded)
	}
}

func TestNotificationSheetFailureDoesNotStopWhatsApp(t *testing.T) {
	sheets := &fakeSheets{err: errors.New("sheets quota exceeded")}
	whatsapp := &fakeWhatsApp{paid: true}
	costs := &fakeCostGuard{allowed: true}
	svc := newTestNotifier(sheets, whatsapp, costs)

	svc.Dispatch(dto.TicketNotification{ServicioID: "s-3"})

	if len(whatsapp.sent) != 1 {
		t.Errorf("whatsapp must still fire when sheets fails, got %d sends", len(whatsapp.sent))
	}
	if costs.recorded != 1 {
		t.Errorf("expected paid send recorded, got %d", costs.recorded)
	}
}

func TestNotificationBudgetDeniedSkipsSend(t *testing.T) {
	sheets := &fakeSheets{}
	whatsapp := &fakeWhatsApp{paid: true}
	costs := &fakeCostGuard{allowed: false, reason: "Límite de costo diario alcanzado"}
	svc := newTestNotifier(sheets, whatsapp, costs)

	svc.Dispatch(dto.TicketNotification{ServicioID: "s-4"})

	if len(sheets.rows) != 1 {
		t.Errorf("sheets append is free and must still run, got %d rows", len(sheets.rows))
	}
	if len(whatsapp.sent) != 0 {
		t.Errorf("denied budget must skip whatsapp, got %d sends", len(whatsapp.sent))
	}
	if costs.recorded != 0 {
		t.Errorf("skipped send must not be charged, got %d", costs.recorded)
	}
}

func TestNotificationFreeChannelNotCharged(t *testing.T) {
	costs := &fakeCostGuard{allowed: true}
	svc := newTestNotifier(&fakeSheets{}, &fakeWhatsApp{paid: false}, costs)

	svc.Dispatch(dto.TicketNotification{ServicioID: "s-5"})

	if costs.recorded != 0 {
		t.Errorf("free fallback send must not be charged, got %d", costs.recorded)
	}
}

func TestNotificationDisabledSheetsNotLoggedAsSuccess(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	sheets := &fakeSheets{skipped: true}
	whatsapp := &fakeWhatsApp{paid: true}
	costs := &fakeCostGuard{allowed: true}
	svc := newTestNotifier(sheets, whatsapp, costs)

	svc.Dispatch(dto.TicketNotification{ServicioID: "s-7"})

	if strings.Contains(buf.String(), "Google Sheets updated") {
		t.Error("skipped sheets append must not be logged as a success")
	}
	if len(whatsapp.sent) != 1 {
		t.Errorf("whatsapp must still fire when sheets is disabled, got %d sends", len(whatsapp.sent))
	}
}

func TestNotificationBothChannelsFailing(t *testing.T) {
	sheets := &fakeSheets{err: errors.New("sheets down")}
	whatsapp := &fakeWhatsApp{err: errors.New("twilio down")}
	costs := &fakeCostGuard{allowed: true}
	svc := newTestNotifier(sheets, whatsapp, costs)

	// Must not panic and must not charge the budget.
	svc.Dispatch(dto.TicketNotification{ServicioID: "s-6"})

	if costs.recorded != 0 {
		t.Errorf("failed send must not be charged, got %d", costs.recorded)
	}
}
