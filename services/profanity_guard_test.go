package services

import (
	"strings"
	"testing"
	"time"
)

func newTestProfanityGuard() *ProfanityGuardService {
	return &ProfanityGuardService{
		attempts:      make(map[string]*ProfanityAttempt),
		maxAttempts:   3,
		blockDuration: 15 * time.Minute,
		resetWindow:   60 * time.Minute,
	}
}

func TestProfanityGuardAdmitsUnknownClient(t *testing.T) {
	svc := newTestProfanityGuard()

	if rejection := svc.admit("198.51.100.1"); rejection != nil {
		t.Fatalf("unknown client must be admitted, got %s", rejection.Message)
	}
}

func TestProfanityGuardWarnedThenBlocked(t *testing.T) {
	svc := newTestProfanityGuard()
	const ip = "198.51.100.2"

	svc.RecordAttempt(ip)
	if got := svc.AttemptCount(ip); got != 1 {
		t.Fatalf("expected 1 attempt, got %d", got)
	}
	if rejection := svc.admit(ip); rejection != nil {
		t.Fatal("one violation must not block")
	}

	svc.RecordAttempt(ip)
	if rejection := svc.admit(ip); rejection != nil {
		t.Fatal("two violations must not block")
	}

	svc.RecordAttempt(ip)
	if got := svc.AttemptCount(ip); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}

	rejection := svc.admit(ip)
	if rejection == nil {
		t.Fatal("expected block after third violation")
	}
	if rejection.StatusCode != 429 {
		t.Errorf("expected status 429, got %d", rejection.StatusCode)
	}
	if !strings.Contains(rejection.Message, "contenido inapropiado") {
		t.Errorf("unexpected message: %q", rejection.Message)
	}
	if rejection.BlockedUntil == nil {
		t.Fatal("expected blockedUntil in the rejection")
	}
	if until := time.Until(*rejection.BlockedUntil); until < 14*time.Minute || until > 16*time.Minute {
		t.Errorf("expected a 15 minute block, got %v", until)
	}
}

func TestProfanityGuardBlockExpires(t *testing.T) {
	svc := newTestProfanityGuard()
	const ip = "198.51.100.3"

	expired := time.Now().Add(-time.Minute)
	svc.attempts[ip] = &ProfanityAttempt{
		Count:        3,
		FirstAttempt: time.Now().Add(-30 * time.Minute),
		LastAttempt:  time.Now().Add(-20 * time.Minute),
		BlockedUntil: &expired,
	}

	if rejection := svc.admit(ip); rejection != nil {
		t.Fatalf("expected admission after block expiry, got %s", rejection.Message)
	}
}

func TestProfanityGuardResetWindowStartsOver(t *testing.T) {
	svc := newTestProfanityGuard()
	const ip = "198.51.100.4"

	svc.attempts[ip] = &ProfanityAttempt{
		Count:        2,
		FirstAttempt: time.Now().Add(-2 * time.Hour),
		LastAttempt:  time.Now().Add(-2 * time.Hour),
	}

	svc.RecordAttempt(ip)

	if got := svc.AttemptCount(ip); got != 1 {
		t.Fatalf("expected counter restart at 1 after reset window, got %d", got)
	}
	if svc.attempts[ip].BlockedUntil != nil {
		t.Error("restarted counter must not carry a block")
	}
}

func TestProfanityGuardInlineCleanup(t *testing.T) {
	svc := newTestProfanityGuard()

	stillBlocked := time.Now().Add(10 * time.Minute)
	svc.attempts["stale"] = &ProfanityAttempt{
		Count:        2,
		FirstAttempt: time.Now().Add(-2 * time.Hour),
		LastAttempt:  time.Now().Add(-2 * time.Hour),
	}
	svc.attempts["blocked"] = &ProfanityAttempt{
		Count:        3,
		FirstAttempt: time.Now().Add(-2 * time.Hour),
		LastAttempt:  time.Now().Add(-90 * time.Minute),
		BlockedUntil: &stillBlocked,
	}

	svc.admit("anyone")

	if _, ok := svc.attempts["stale"]; ok {
		t.Error("expected stale attempt removed by inline cleanup")
	}
	if _, ok := svc.attempts["blocked"]; !ok {
		t.Error("expected blocked attempt kept while the block is active")
	}
}

func TestProfanityGuardAttemptInfoIsCopy(t *testing.T) {
	svc := newTestProfanityGuard()
	const ip = "198.51.100.5"

	svc.RecordAttempt(ip)

	info := svc.AttemptInfo(ip)
	if info == nil {
		t.Fatal("expected attempt info")
	}
	info.Count = 99

	if got := svc.AttemptCount(ip); got != 1 {
		t.Errorf("mutating the returned copy must not affect state, got %d", got)
	}
}
