package services

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/tecno-hogar/tecnohogar_api/dto"
)

// CostMonitorService budgets outbound WhatsApp spend with in-memory per-day
// and per-month message ledgers. Counts survive only for the process
// lifetime, which is acceptable at this message volume.
type CostMonitorService struct {
	context.DefaultService

	mutex        sync.Mutex
	dailyCount   map[string]int
	monthlyCount map[string]int

	costPerMessage float64
	dailyLimitUSD  float64
	monthlyLimit   float64

	stopRollover chan struct{}
}

const COST_MONITOR_SVC = "cost_monitor_svc"

func (svc CostMonitorService) Id() string {
	return COST_MONITOR_SVC
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func (svc *CostMonitorService) Configure(ctx *context.Context) error {
	svc.dailyCount = make(map[string]int)
	svc.monthlyCount = make(map[string]int)
	svc.stopRollover = make(chan struct{})

	svc.costPerMessage = envFloat("COST_PER_MESSAGE_USD", 0.005)
	svc.dailyLimitUSD = envFloat("DAILY_COST_LIMIT_USD", 2.00)
	svc.monthlyLimit = envFloat("MONTHLY_COST_LIMIT_USD", 20.00)

	return svc.DefaultService.Configure(ctx)
}

func (svc *CostMonitorService) Start() error {
	go svc.rolloverLoop()
	return nil
}

func (svc *CostMonitorService) Shutdown() {
	close(svc.stopRollover)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CanSend reports whether one more message fits under both budget ceilings.
// Daily is checked before monthly; a limit already reached (not only
// exceeded) denies the send.
func (svc *CostMonitorService) CanSend() (bool, string, dto.CostStats) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	today := dateKey(now)
	currentMonth := monthKey(now)

	dailyMessages := svc.dailyCount[today]
	monthlyMessages := svc.monthlyCount[currentMonth]

	dailyCost := float64(dailyMessages) * svc.costPerMessage
	monthlyCost := float64(monthlyMessages) * svc.costPerMessage

	stats := dto.CostStats{
		Date:             today,
		MessagesSent:     dailyMessages,
		EstimatedCostUSD: dailyCost,
		DailyLimit:       svc.dailyLimitUSD,
		MonthlyTotal:     monthlyCost,
	}

	if dailyCost >= svc.dailyLimitUSD {
		log.Errorf("DAILY COST LIMIT EXCEEDED | Current: $%.3f | Limit: $%.2f | Messages: %d",
			dailyCost, svc.dailyLimitUSD, dailyMessages)

		reason := fmt.Sprintf("Límite de costo diario alcanzado ($%.2f USD). "+
			"Mensajes enviados hoy: %d. Las notificaciones se reanudarán mañana.",
			svc.dailyLimitUSD, dailyMessages)
		return false, reason, stats
	}

	if monthlyCost >= svc.monthlyLimit {
		log.Errorf("MONTHLY COST LIMIT EXCEEDED | Current: $%.3f | Limit: $%.2f | Messages: %d",
			monthlyCost, svc.monthlyLimit, monthlyMessages)

		reason := fmt.Sprintf("Límite de costo mensual alcanzado ($%.2f USD). "+
			"Mensajes enviados este mes: %d. Las notificaciones se reanudarán el próximo mes.",
			svc.monthlyLimit, monthlyMessages)
		return false, reason, stats
	}

	if warnAt := svc.dailyLimitUSD * 0.8; dailyCost >= warnAt {
		log.Warnf("APPROACHING DAILY LIMIT | Current: $%.3f | Limit: $%.2f | Remaining: $%.3f",
			dailyCost, svc.dailyLimitUSD, svc.dailyLimitUSD-dailyCost)
	}

	return true, "", stats
}

// RecordSent charges one confirmed send against both ledgers.
func (svc *CostMonitorService) RecordSent() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	today := dateKey(now)
	currentMonth := monthKey(now)

	svc.dailyCount[today]++
	svc.monthlyCount[currentMonth]++

	dailyMessages := svc.dailyCount[today]
	monthlyMessages := svc.monthlyCount[currentMonth]

	whatsappMessagesSent.Inc()

	log.Infof("Message recorded | Today: %d msgs ($%.3f) | Month: %d msgs ($%.3f)",
		dailyMessages, float64(dailyMessages)*svc.costPerMessage,
		monthlyMessages, float64(monthlyMessages)*svc.costPerMessage)
}

func (svc *CostMonitorService) Stats() dto.CostReport {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	dailyMessages := svc.dailyCount[dateKey(now)]
	monthlyMessages := svc.monthlyCount[monthKey(now)]

	return dto.CostReport{
		Daily: dto.CostStats{
			Date:             dateKey(now),
			MessagesSent:     dailyMessages,
			EstimatedCostUSD: float64(dailyMessages) * svc.costPerMessage,
			DailyLimit:       svc.dailyLimitUSD,
			MonthlyTotal:     float64(monthlyMessages) * svc.costPerMessage,
		},
		Monthly: dto.MonthlyCostStats{
			MessagesSent:     monthlyMessages,
			EstimatedCostUSD: float64(monthlyMessages) * svc.costPerMessage,
			Limit:            svc.monthlyLimit,
		},
	}
}

// DetailedReport renders a human-readable usage summary for the admin panel.
func (svc *CostMonitorService) DetailedReport() string {
	report := svc.Stats()

	dailyPct := 0.0
	if report.Daily.DailyLimit > 0 {
		dailyPct = report.Daily.EstimatedCostUSD / report.Daily.DailyLimit * 100
	}
	monthlyPct := 0.0
	if report.Monthly.Limit > 0 {
		monthlyPct = report.Monthly.EstimatedCostUSD / report.Monthly.Limit * 100
	}

	return fmt.Sprintf(
		"COST MONITORING REPORT - WHATSAPP\n"+
			"Daily   | date: %s | messages: %d | cost: $%.3f | limit: $%.2f | usage: %.1f%%\n"+
			"Monthly | messages: %d | cost: $%.3f | limit: $%.2f | usage: %.1f%%",
		report.Daily.Date, report.Daily.MessagesSent, report.Daily.EstimatedCostUSD,
		report.Daily.DailyLimit, dailyPct,
		report.Monthly.MessagesSent, report.Monthly.EstimatedCostUSD,
		report.Monthly.Limit, monthlyPct,
	)
}

// rolloverLoop waits for local midnight, then prunes daily, every 24h.
func (svc *CostMonitorService) rolloverLoop() {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	log.Infof("Daily cost reset scheduled for: %s", midnight.Format("2006-01-02 15:04:05"))

	timer := time.NewTimer(time.Until(midnight))
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-svc.stopRollover:
		return
	}

	svc.rolloverDaily()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			svc.rolloverDaily()
		case <-svc.stopRollover:
			return
		}
	}
}

// rolloverDaily logs yesterday's totals and keeps only the last 7 days of
// daily records. Monthly records are never pruned in-process.
func (svc *CostMonitorService) rolloverDaily() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	yesterday := dateKey(now.AddDate(0, 0, -1))
	if messages := svc.dailyCount[yesterday]; messages > 0 {
		log.Infof("Daily reset | Yesterday: %d msgs ($%.3f)",
			messages, float64(messages)*svc.costPerMessage)
	}

	cutoff := now.AddDate(0, 0, -7)
	cleaned := 0
	for key := range svc.dailyCount {
		day, err := time.ParseInLocation("2006-01-02", key, now.Location())
		if err != nil || day.Before(cutoff) {
			delete(svc.dailyCount, key)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Infof("Cleaned up %d old daily records", cleaned)
	}
}
