package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
)

const (
	twilioMessagesURL = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"
	callMeBotURL      = "https://api.callmebot.com/whatsapp.php"
)

// WhatsAppService pushes the new-request alert to the owner's phone. Twilio
// is the paid primary transport; CallMeBot is the free fallback when Twilio
// credentials are absent. Only Twilio sends count against the cost budget.
type WhatsAppService struct {
	context.DefaultService

	httpClient *http.Client

	enabled    bool
	adminPhone string

	twilioAccountSID string
	twilioAuthToken  string
	twilioFrom       string

	callMeBotAPIKey string
}

const WHATSAPP_SVC = "whatsapp_svc"

func (svc WhatsAppService) Id() string {
	return WHATSAPP_SVC
}

func (svc *WhatsAppService) Configure(ctx *context.Context) error {
	svc.httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	svc.enabled = os.Getenv("WHATSAPP_NOTIFICATIONS_ENABLED") == "true"
	svc.adminPhone = os.Getenv("WHATSAPP_ADMIN_PHONE")

	svc.twilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	svc.twilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	svc.twilioFrom = os.Getenv("TWILIO_WHATSAPP_FROM")

	svc.callMeBotAPIKey = os.Getenv("CALLMEBOT_API_KEY")

	return svc.DefaultService.Configure(ctx)
}

func (svc *WhatsAppService) Start() error {
	return nil
}

func (svc *WhatsAppService) Enabled() bool {
	return svc.enabled
}

func (svc *WhatsAppService) twilioConfigured() bool {
	return svc.twilioAccountSID != "" && svc.twilioAuthToken != "" && svc.twilioFrom != ""
}

func (svc *WhatsAppService) callMeBotConfigured() bool {
	return svc.callMeBotAPIKey != ""
}

// Send delivers the alert through whichever transport is configured. paid
// reports whether the message went through Twilio and must be charged to the
// budget. A disabled service or missing configuration is not an error.
func (svc *WhatsAppService) Send(data dto.TicketNotification) (paid bool, err error) {
	if !svc.enabled {
		log.Warn("WhatsApp notifications are disabled")
		return false, nil
	}

	if svc.adminPhone == "" {
		log.Error("WHATSAPP_ADMIN_PHONE is not configured")
		return false, nil
	}

	message := FormatWhatsAppMessage(data)

	if svc.twilioConfigured() {
		if err := svc.sendViaTwilio(message); err != nil {
			return false, err
		}
		log.Infof("WhatsApp notification sent via Twilio for %s", data.Cliente)
		return true, nil
	}

	if svc.callMeBotConfigured() {
		if err := svc.sendViaCallMeBot(message); err != nil {
			return false, err
		}
		log.Infof("WhatsApp notification sent via CallMeBot for %s", data.Cliente)
		return false, nil
	}

	log.Warn("No WhatsApp transport configured, skipping notification")
	return false, nil
}

func (svc *WhatsAppService) sendViaTwilio(message string) error {
	form := url.Values{}
	form.Set("From", "whatsapp:"+svc.twilioFrom)
	form.Set("To", "whatsapp:"+svc.adminPhone)
	form.Set("Body", message)

	endpoint := fmt.Sprintf(twilioMessagesURL, svc.twilioAccountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(svc.twilioAccountSID, svc.twilioAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := svc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (svc *WhatsAppService) sendViaCallMeBot(message string) error {
	params := url.Values{}
	params.Set("phone", svc.adminPhone)
	params.Set("text", message)
	params.Set("apikey", svc.callMeBotAPIKey)

	resp, err := svc.httpClient.Get(callMeBotURL + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("callmebot returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// FormatWhatsAppMessage renders the labeled multi-line alert sent to the
// owner's phone.
func FormatWhatsAppMessage(data dto.TicketNotification) string {
	var urgencyGlyph string
	switch strings.ToLower(data.Urgencia) {
	case "alta":
		urgencyGlyph = "🚨"
	case "media":
		urgencyGlyph = "⚡"
	default:
		urgencyGlyph = "📌"
	}

	var b strings.Builder
	b.WriteString("🔔 *Nueva Solicitud de Servicio - Tecno Hogar*\n\n")

	if data.ServicioID != "" {
		fmt.Fprintf(&b, "📋 *Servicio #%s*\n", data.ServicioID)
	}
	fmt.Fprintf(&b, "🕐 %s\n\n", data.FechaSolicitud)

	b.WriteString("👤 *CLIENTE*\n")
	fmt.Fprintf(&b, "Nombre: %s\n", data.Cliente)
	fmt.Fprintf(&b, "📱 Tel: %s\n", data.Telefono)
	if data.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s\n", data.Email)
	}

	b.WriteString("\n🔧 *ELECTRODOMÉSTICO*\n")
	fmt.Fprintf(&b, "Tipo: %s\n", data.TipoElectrodomestico)
	if data.Marca != "" {
		fmt.Fprintf(&b, "Marca: %s\n", data.Marca)
	}
	if data.Modelo != "" {
		fmt.Fprintf(&b, "Modelo: %s\n", data.Modelo)
	}

	b.WriteString("\n📍 *UBICACIÓN*\n")
	if data.Direccion != "" {
		fmt.Fprintf(&b, "Dirección: %s\n", data.Direccion)
	}
	if data.UbicacionServicio != "" {
		fmt.Fprintf(&b, "Ref: %s\n", data.UbicacionServicio)
	}

	fmt.Fprintf(&b, "\n%s *URGENCIA: %s* %s\n", urgencyGlyph, strings.ToUpper(data.Urgencia), urgencyGlyph)

	if data.FechaPreferida != "" {
		fmt.Fprintf(&b, "📅 Fecha preferida: %s\n", data.FechaPreferida)
	}

	b.WriteString("\n📝 *PROBLEMA:*\n")
	b.WriteString(data.Problema)
	b.WriteString("\n\n✅ Revisa el panel de administración para más detalles.")

	return b.String()
}
