package services

import (
	"testing"

	"github.com/tecno-hogar/tecnohogar_api/dto"
)

func TestNewSheetsServiceFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_ENABLED", "true")
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_SHEET_NAME", "")

	svc := NewSheetsService()
	if !svc.Enabled() {
		t.Error("expected service enabled")
	}
	if svc.spreadsheetID != "sheet-123" {
		t.Errorf("unexpected spreadsheet id: %q", svc.spreadsheetID)
	}
	if svc.sheetName != "Solicitudes" {
		t.Errorf("expected default sheet name, got %q", svc.sheetName)
	}
}

func TestNewSheetsServiceDisabledByDefault(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_ENABLED", "")

	if NewSheetsService().Enabled() {
		t.Error("expected service disabled without the env flag")
	}
}

func TestSheetsAppendRowDisabledSkips(t *testing.T) {
	svc := &SheetsService{enabled: false}

	skipped, err := svc.AppendRow(dto.TicketNotification{ServicioID: "s-1"})
	if err != nil {
		t.Fatalf("disabled append must not error, got %v", err)
	}
	if !skipped {
		t.Error("disabled append must report skipped")
	}
}

func TestSheetsAppendRowUninitializedClient(t *testing.T) {
	svc := &SheetsService{enabled: true}

	skipped, err := svc.AppendRow(dto.TicketNotification{ServicioID: "s-1"})
	if err == nil {
		t.Fatal("expected error when the client never initialized")
	}
	if skipped {
		t.Error("initialization failure is not a skip")
	}
}
