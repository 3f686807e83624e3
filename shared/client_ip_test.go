package shared

import (
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakeAddr string

func (a fakeAddr) Network() string { return "tcp" }
func (a fakeAddr) String() string  { return string(a) }

func resolveClientIP(t *testing.T, remote net.Addr, headers map[string]string) string {
	t.Helper()

	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		if remote != nil {
			c.Context().SetRemoteAddr(remote)
		}
		got = ClientIP(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return got
}

func TestClientIPForwardedForWins(t *testing.T) {
	got := resolveClientIP(t, nil, map[string]string{
		"X-Forwarded-For": "203.0.113.5, 10.0.0.1",
		"X-Real-IP":       "198.51.100.9",
	})
	if got != "203.0.113.5" {
		t.Errorf("expected first forwarded entry, got %q", got)
	}
}

func TestClientIPForwardedForSingleEntry(t *testing.T) {
	got := resolveClientIP(t, nil, map[string]string{
		"X-Forwarded-For": "203.0.113.6",
	})
	if got != "203.0.113.6" {
		t.Errorf("expected forwarded entry, got %q", got)
	}
}

func TestClientIPEmptyForwardedFallsToRealIP(t *testing.T) {
	got := resolveClientIP(t, nil, map[string]string{
		"X-Forwarded-For": " , 10.0.0.1",
		"X-Real-IP":       "198.51.100.9",
	})
	if got != "198.51.100.9" {
		t.Errorf("expected X-Real-IP when the first forwarded entry is empty, got %q", got)
	}
}

func TestClientIPRealIPBeatsRemoteAddr(t *testing.T) {
	got := resolveClientIP(t, fakeAddr("192.0.2.1:4000"), map[string]string{
		"X-Real-IP": "198.51.100.9",
	})
	if got != "198.51.100.9" {
		t.Errorf("expected X-Real-IP, got %q", got)
	}
}

func TestClientIPRemoteAddrFallback(t *testing.T) {
	got := resolveClientIP(t, fakeAddr("192.0.2.1:4000"), nil)
	if got != "192.0.2.1" {
		t.Errorf("expected remote addr host, got %q", got)
	}
}

func TestClientIPUnsplittableRemoteAddr(t *testing.T) {
	got := resolveClientIP(t, fakeAddr("not-host-port"), nil)
	if got != "not-host-port" {
		t.Errorf("expected raw addr when host:port parsing fails, got %q", got)
	}
}

func TestClientIPUnknownFallback(t *testing.T) {
	got := resolveClientIP(t, fakeAddr(""), nil)
	if got != "unknown" {
		t.Errorf("expected shared unknown bucket, got %q", got)
	}
}
