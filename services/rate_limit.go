package services

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

type rateLimitEntry struct {
	count        int
	windowStart  time.Time
	blockedUntil *time.Time
}

// RateLimitService is the per-IP admission gate for the public request form.
// State is process-local; the mutex covers the whole lookup/window-check/
// increment/block cycle so concurrent handlers observe at most one increment
// per request.
type RateLimitService struct {
	context.DefaultService

	mutex   sync.Mutex
	entries map[string]*rateLimitEntry

	maxRequests   int
	window        time.Duration
	blockDuration time.Duration
	sweepInterval time.Duration

	stopSweep chan struct{}
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.entries = make(map[string]*rateLimitEntry)
	svc.stopSweep = make(chan struct{})

	svc.maxRequests = envInt("RATE_LIMIT_MAX_REQUESTS", 5)
	windowMinutes := envInt("RATE_LIMIT_WINDOW_MINUTES", 60)
	svc.window = time.Duration(windowMinutes) * time.Minute

	// Block lasts as long as the window unless overridden.
	svc.blockDuration = time.Duration(envInt("RATE_LIMIT_BLOCK_MINUTES", windowMinutes)) * time.Minute
	svc.sweepInterval = time.Duration(envInt("RATE_LIMIT_SWEEP_MINUTES", 60)) * time.Minute

	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	go svc.sweepLoop()
	return nil
}

func (svc *RateLimitService) Shutdown() {
	close(svc.stopSweep)
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

// remainingMinutes rounds a block remainder up to whole minutes, so an
// exactly-30:00 block reads 30 and 29:01 reads 30 as well.
func remainingMinutes(until, now time.Time) int {
	return int(math.Ceil(until.Sub(now).Minutes()))
}

func (svc *RateLimitService) windowLabel() string {
	return fmt.Sprintf("%d minutos", int(svc.window.Minutes()))
}

// Admit runs the sliding-window check for one request from clientKey. A nil
// rejection means the request may proceed.
func (svc *RateLimitService) Admit(clientKey, path string) *dto.RateLimitExceeded {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	entry, exists := svc.entries[clientKey]

	// Active block rejects without touching the counter.
	if exists && entry.blockedUntil != nil && now.Before(*entry.blockedUntil) {
		remaining := remainingMinutes(*entry.blockedUntil, now)

		log.Warnf("IP blocked: %s | Remaining: %d min | Path: %s", clientKey, remaining, path)

		blockedUntil := *entry.blockedUntil
		return &dto.RateLimitExceeded{
			StatusCode:   http.StatusTooManyRequests,
			Message:      fmt.Sprintf("Has excedido el límite de solicitudes. Intenta nuevamente en %d minuto(s).", remaining),
			Error:        "Too Many Requests",
			BlockedUntil: &blockedUntil,
			Limit:        svc.maxRequests,
			Window:       svc.windowLabel(),
		}
	}

	if exists {
		if now.Sub(entry.windowStart) > svc.window {
			// Window expired, reset counter
			entry.count = 1
			entry.windowStart = now
			entry.blockedUntil = nil
			log.Infof("Rate limit reset for IP: %s", clientKey)
			return nil
		}

		entry.count++

		if entry.count > svc.maxRequests {
			blockedUntil := now.Add(svc.blockDuration)
			entry.blockedUntil = &blockedUntil

			log.Warnf("IP BLOCKED: %s | Requests: %d/%d | Blocked until: %s",
				clientKey, entry.count, svc.maxRequests, blockedUntil.Format(time.RFC3339))

			return &dto.RateLimitExceeded{
				StatusCode: http.StatusTooManyRequests,
				Message: fmt.Sprintf("Has excedido el límite de %d solicitudes en %d minutos. "+
					"Tu IP ha sido bloqueada temporalmente por %d minutos.",
					svc.maxRequests, int(svc.window.Minutes()), int(svc.blockDuration.Minutes())),
				Error:        "Too Many Requests",
				BlockedUntil: &blockedUntil,
				Limit:        svc.maxRequests,
				Window:       svc.windowLabel(),
			}
		}

		if remaining := svc.maxRequests - entry.count; remaining <= 2 {
			log.Warnf("IP approaching limit: %s | Requests: %d/%d | Remaining: %d",
				clientKey, entry.count, svc.maxRequests, remaining)
		}

		return nil
	}

	svc.entries[clientKey] = &rateLimitEntry{count: 1, windowStart: now}
	log.Infof("New IP tracked: %s | Path: %s", clientKey, path)
	return nil
}

// Limit is the fiber admission middleware for public endpoints.
func (svc *RateLimitService) Limit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rejection := svc.Admit(shared.ClientIP(c), c.Path()); rejection != nil {
			return c.Status(http.StatusTooManyRequests).JSON(rejection)
		}
		return c.Next()
	}
}

func (svc *RateLimitService) Stats() dto.RateLimitStats {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	blocked := 0
	for _, entry := range svc.entries {
		if entry.blockedUntil != nil && now.Before(*entry.blockedUntil) {
			blocked++
		}
	}

	rateLimitTrackedIPs.Set(float64(len(svc.entries)))
	rateLimitBlockedIPs.Set(float64(blocked))

	return dto.RateLimitStats{
		TotalIPs:      len(svc.entries),
		BlockedIPs:    blocked,
		MaxRequests:   svc.maxRequests,
		WindowMinutes: int(svc.window.Minutes()),
	}
}

func (svc *RateLimitService) sweepLoop() {
	ticker := time.NewTicker(svc.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.sweep()
		case <-svc.stopSweep:
			return
		}
	}
}

// sweep drops entries whose window aged past the sweep interval, keeping
// blocked entries alive so blocks outlast stale windows.
func (svc *RateLimitService) sweep() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	cleaned := 0
	for ip, entry := range svc.entries {
		expired := now.Sub(entry.windowStart) > svc.sweepInterval
		blocked := entry.blockedUntil != nil && now.Before(*entry.blockedUntil)
		if expired && !blocked {
			delete(svc.entries, ip)
			cleaned++
		}
	}

	rateLimitTrackedIPs.Set(float64(len(svc.entries)))

	if cleaned > 0 {
		log.Infof("Cleanup: Removed %d expired entries | Active IPs: %d", cleaned, len(svc.entries))
	}
}
