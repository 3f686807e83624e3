package services

import (
	"context"
	"fmt"
	"os"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/tecno-hogar/tecnohogar_api/dto"
)

// SheetsService appends every new service request to the business
// spreadsheet. The sheet is a convenience log for the owner, so all errors
// here stay at this boundary.
type SheetsService struct {
	appContext.DefaultService

	sheets *sheets.Service

	enabled       bool
	spreadsheetID string
	sheetName     string
}

const SHEETS_SVC = "sheets_svc"

func (svc SheetsService) Id() string {
	return SHEETS_SVC
}

// NewSheetsService builds a standalone instance for CLI use outside the
// service container.
func NewSheetsService() *SheetsService {
	svc := &SheetsService{}
	svc.loadEnv()
	return svc
}

func (svc *SheetsService) loadEnv() {
	svc.enabled = os.Getenv("GOOGLE_SHEETS_ENABLED") == "true"
	svc.spreadsheetID = os.Getenv("GOOGLE_SPREADSHEET_ID")
	svc.sheetName = os.Getenv("GOOGLE_SHEET_NAME")
	if svc.sheetName == "" {
		svc.sheetName = "Solicitudes"
	}
}

func (svc *SheetsService) Configure(ctx *appContext.Context) error {
	svc.loadEnv()
	return svc.DefaultService.Configure(ctx)
}

func (svc *SheetsService) Enabled() bool {
	return svc.enabled
}

func (svc *SheetsService) Start() error {
	if !svc.enabled {
		return nil
	}

	credentials := os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY")
	if credentials == "" {
		log.Error("GOOGLE_SERVICE_ACCOUNT_KEY is not configured")
		return nil
	}

	client, err := sheets.NewService(context.Background(),
		option.WithCredentialsJSON([]byte(credentials)),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		log.WithError(err).Error("Error initializing Google Sheets API")
		return nil
	}

	svc.sheets = client
	log.Info("Google Sheets API initialized successfully")
	return nil
}

// AppendRow writes the 13-column request row. The sequence id is the current
// row count of column A, so ids follow sheet order rather than database ids.
// skipped reports that the channel is disabled and nothing was written.
func (svc *SheetsService) AppendRow(data dto.TicketNotification) (skipped bool, err error) {
	if !svc.enabled {
		log.Warn("Google Sheets is disabled")
		return true, nil
	}
	if svc.sheets == nil {
		return false, fmt.Errorf("google sheets client is not initialized")
	}

	resp, err := svc.sheets.Spreadsheets.Values.
		Get(svc.spreadsheetID, svc.sheetName+"!A:A").Do()
	if err != nil {
		return false, fmt.Errorf("reading sheet row count: %w", err)
	}
	nextID := 1
	if len(resp.Values) > 0 {
		nextID = len(resp.Values)
	}

	row := []interface{}{
		nextID,
		data.FechaSolicitud,
		data.Cliente,
		data.Telefono,
		data.Email,
		data.Direccion,
		data.TipoElectrodomestico,
		data.Marca,
		data.Modelo,
		data.Problema,
		data.UbicacionServicio,
		data.Urgencia,
		"Pendiente",
	}

	_, err = svc.sheets.Spreadsheets.Values.
		Append(svc.spreadsheetID, svc.sheetName+"!A:M", &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return false, fmt.Errorf("appending sheet row: %w", err)
	}

	log.Infof("Row added successfully to Google Sheets for %s", data.Cliente)
	return false, nil
}

// CreateHeaderRow writes and formats the header row. Run once from the seed
// tool when pointing the service at a fresh spreadsheet.
func (svc *SheetsService) CreateHeaderRow() error {
	if !svc.enabled {
		return nil
	}
	if svc.sheets == nil {
		return fmt.Errorf("google sheets client is not initialized")
	}

	headers := []interface{}{
		"ID", "Fecha Solicitud", "Cliente", "Teléfono", "Email", "Dirección",
		"Tipo Electrodoméstico", "Marca", "Modelo", "Problema",
		"Ubicación Servicio", "Urgencia", "Estado",
	}

	_, err := svc.sheets.Spreadsheets.Values.
		Update(svc.spreadsheetID, svc.sheetName+"!A1:M1", &sheets.ValueRange{
			Values: [][]interface{}{headers},
		}).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	_, err = svc.sheets.Spreadsheets.BatchUpdate(svc.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          0,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   13,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							BackgroundColor: &sheets.Color{Red: 0.024, Green: 0.714, Blue: 0.831},
							TextFormat: &sheets.TextFormat{
								ForegroundColor: &sheets.Color{Red: 1, Green: 1, Blue: 1},
								FontSize:        11,
								Bold:            true,
							},
							HorizontalAlignment: "CENTER",
							VerticalAlignment:   "MIDDLE",
						},
					},
					Fields: "userEnteredFormat(backgroundColor,textFormat,horizontalAlignment,verticalAlignment)",
				},
			},
			{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Properties: &sheets.SheetProperties{
						SheetId: 0,
						GridProperties: &sheets.GridProperties{
							FrozenRowCount: 1,
						},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
		},
	}).Do()
	if err != nil {
		return fmt.Errorf("formatting header row: %w", err)
	}

	log.Info("Headers created in Google Sheets")
	return nil
}
