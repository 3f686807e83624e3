package services

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

// ProfanityAttempt tracks content-validation failures from one client key.
type ProfanityAttempt struct {
	Count        int
	FirstAttempt time.Time
	LastAttempt  time.Time
	BlockedUntil *time.Time
}

// ProfanityGuardService escalates repeated profanity submissions into a
// temporary block. Violations are recorded by the validation path; the block
// itself lands on the client's next request, whatever its content. Separate
// state and thresholds from the general rate limiter.
type ProfanityGuardService struct {
	context.DefaultService

	mutex    sync.Mutex
	attempts map[string]*ProfanityAttempt

	maxAttempts   int
	blockDuration time.Duration
	resetWindow   time.Duration
}

const PROFANITY_GUARD_SVC = "profanity_guard_svc"

func (svc ProfanityGuardService) Id() string {
	return PROFANITY_GUARD_SVC
}

func (svc *ProfanityGuardService) Configure(ctx *context.Context) error {
	svc.attempts = make(map[string]*ProfanityAttempt)

	svc.maxAttempts = envInt("PROFANITY_MAX_ATTEMPTS", 3)
	svc.blockDuration = time.Duration(envInt("PROFANITY_BLOCK_MINUTES", 15)) * time.Minute
	svc.resetWindow = time.Duration(envInt("PROFANITY_RESET_MINUTES", 60)) * time.Minute

	return svc.DefaultService.Configure(ctx)
}

func (svc *ProfanityGuardService) Start() error {
	return nil
}

// MaxAttempts exposes the configured threshold for warning messages.
func (svc *ProfanityGuardService) MaxAttempts() int {
	return svc.maxAttempts
}

func (svc *ProfanityGuardService) BlockMinutes() int {
	return int(svc.blockDuration.Minutes())
}

// CheckBlocked is the admission middleware: it only rejects clients whose
// violation count already crossed the threshold. Stale entries are swept
// inline, the way traffic drove cleanup in the original guard.
func (svc *ProfanityGuardService) CheckBlocked() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientIP := shared.ClientIP(c)

		if rejection := svc.admit(clientIP); rejection != nil {
			return c.Status(http.StatusTooManyRequests).JSON(rejection)
		}
		return c.Next()
	}
}

func (svc *ProfanityGuardService) admit(clientKey string) *dto.RateLimitExceeded {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.cleanupLocked()

	attempt, exists := svc.attempts[clientKey]
	if !exists || attempt.BlockedUntil == nil {
		return nil
	}

	now := time.Now()
	if now.Before(*attempt.BlockedUntil) {
		remaining := remainingMinutes(*attempt.BlockedUntil, now)
		blockedUntil := *attempt.BlockedUntil

		log.Warnf("Profanity block active for IP: %s | Remaining: %d min", clientKey, remaining)

		return &dto.RateLimitExceeded{
			StatusCode: http.StatusTooManyRequests,
			Message: fmt.Sprintf("Acceso temporalmente bloqueado debido a múltiples intentos de envío "+
				"de contenido inapropiado. Intente nuevamente en %d minuto(s).", remaining),
			Error:        "Too Many Requests",
			BlockedUntil: &blockedUntil,
		}
	}

	return nil
}

// RecordAttempt counts one content-validation failure against clientKey.
func (svc *ProfanityGuardService) RecordAttempt(clientKey string) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	attempt, exists := svc.attempts[clientKey]

	if !exists || now.Sub(attempt.FirstAttempt) > svc.resetWindow {
		svc.attempts[clientKey] = &ProfanityAttempt{
			Count:        1,
			FirstAttempt: now,
			LastAttempt:  now,
		}
		return
	}

	attempt.Count++
	attempt.LastAttempt = now

	if attempt.Count >= svc.maxAttempts {
		blockedUntil := now.Add(svc.blockDuration)
		attempt.BlockedUntil = &blockedUntil
	}
}

// AttemptCount returns how many violations clientKey has in the current
// reset window.
func (svc *ProfanityGuardService) AttemptCount(clientKey string) int {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	if attempt, exists := svc.attempts[clientKey]; exists {
		return attempt.Count
	}
	return 0
}

// AttemptInfo returns a copy of the tracked state for clientKey, or nil.
func (svc *ProfanityGuardService) AttemptInfo(clientKey string) *ProfanityAttempt {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	attempt, exists := svc.attempts[clientKey]
	if !exists {
		return nil
	}
	copied := *attempt
	return &copied
}

func (svc *ProfanityGuardService) cleanupLocked() {
	now := time.Now()
	for ip, attempt := range svc.attempts {
		blocked := attempt.BlockedUntil != nil && now.Before(*attempt.BlockedUntil)
		if now.Sub(attempt.FirstAttempt) > svc.resetWindow && !blocked {
			delete(svc.attempts, ip)
		}
	}
}
