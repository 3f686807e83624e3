package dto

import (
	"strings"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateTicketRequestValid(t *testing.T) {
	req := CreateTicketRequest{
		ClienteID:            "c-1",
		TipoElectrodomestico: "lavadora",
		Marca:                "LG",
		Problema:             "No centrifuga y hace ruido al girar",
		FechaPreferida:       strPtr("2026-09-15"),
		Urgencia:             "alta",
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateTicketRequestProfanityRejected(t *testing.T) {
	req := CreateTicketRequest{
		ClienteID:            "c-1",
		TipoElectrodomestico: "lavadora",
		Problema:             "esta mierda no funciona",
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation failure on profane text")
	}

	errs := FormatValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %+v", len(errs), errs)
	}
	if errs[0].Field != "Problema" {
		t.Errorf("expected error on Problema, got %q", errs[0].Field)
	}
	if errs[0].Message != "La descripción contiene lenguaje inapropiado" {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
}

func TestFormatValidationErrorsSpanishLabels(t *testing.T) {
	req := CreateTicketRequest{
		ClienteID:            "c-1",
		TipoElectrodomestico: "secadora",
		Marca:                "puta marca",
		Problema:             "verga de aparato",
		UbicacionServicio:    "pinche cocina",
	}

	errs := FormatValidationErrors(req.Validate())

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	want := map[string]string{
		"Marca":             "La marca contiene lenguaje inapropiado",
		"Problema":          "La descripción contiene lenguaje inapropiado",
		"UbicacionServicio": "La ubicación contiene lenguaje inapropiado",
	}
	for field, msg := range want {
		if byField[field] != msg {
			t.Errorf("field %s: got %q, want %q", field, byField[field], msg)
		}
	}
}

func TestProfanityFields(t *testing.T) {
	errs := []ValidationError{
		{Field: "Problema", Message: "La descripción contiene lenguaje inapropiado"},
		{Field: "ClienteID", Message: "ClienteID is required"},
		{Field: "Marca", Message: "La marca contiene lenguaje inapropiado"},
	}

	fields := ProfanityFields(errs)
	if len(fields) != 2 {
		t.Fatalf("expected 2 profanity fields, got %v", fields)
	}
	if fields[0] != "Problema" || fields[1] != "Marca" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestCreateTicketRequestRequiredAndOneof(t *testing.T) {
	req := CreateTicketRequest{
		TipoElectrodomestico: "televisor",
		Urgencia:             "urgentisima",
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}

	errs := FormatValidationErrors(err)
	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	if byField["ClienteID"] != "ClienteID is required" {
		t.Errorf("unexpected ClienteID message: %q", byField["ClienteID"])
	}
	if byField["Problema"] != "Problema is required" {
		t.Errorf("unexpected Problema message: %q", byField["Problema"])
	}
	if !strings.HasPrefix(byField["TipoElectrodomestico"], "TipoElectrodomestico must be one of:") {
		t.Errorf("unexpected TipoElectrodomestico message: %q", byField["TipoElectrodomestico"])
	}
	if !strings.HasPrefix(byField["Urgencia"], "Urgencia must be one of:") {
		t.Errorf("unexpected Urgencia message: %q", byField["Urgencia"])
	}
}

func TestCreateClientRequestValidation(t *testing.T) {
	valid := CreateClientRequest{
		Nombre:   "Ana López",
		Telefono: "5512345678",
		Email:    "ana@example.com",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	invalid := CreateClientRequest{
		Nombre:   "A",
		Telefono: "55-1234",
		Email:    "not-an-email",
	}
	errs := FormatValidationErrors(invalid.Validate())
	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	if byField["Nombre"] != "Nombre must be at least 2 characters" {
		t.Errorf("unexpected Nombre message: %q", byField["Nombre"])
	}
	if byField["Telefono"] != "Telefono must contain only numbers" {
		t.Errorf("unexpected Telefono message: %q", byField["Telefono"])
	}
	if byField["Email"] != "Invalid email format" {
		t.Errorf("unexpected Email message: %q", byField["Email"])
	}
}

func TestCreateValidationErrorResponse(t *testing.T) {
	req := CreateTicketRequest{}
	resp := CreateValidationErrorResponse(req.Validate())

	if resp.Code != 400 || resp.Message != "Validation failed" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if len(resp.Errors) == 0 {
		t.Error("expected validation errors in the envelope")
	}
	if resp.Warnings != nil {
		t.Error("warnings must be empty by default")
	}
}
