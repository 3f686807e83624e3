package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	DEFAULT_PROMETHEUS_PORT = 2112
)

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Admission and notification metrics
var (
	rateLimitTrackedIPs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rate_limit_tracked_ips",
		Help: "Client keys currently tracked by the rate limiter",
	})

	rateLimitBlockedIPs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rate_limit_blocked_ips",
		Help: "Client keys currently under a temporary block",
	})

	whatsappMessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "whatsapp_messages_sent_total",
		Help: "Paid WhatsApp messages charged against the cost budget",
	})

	notificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_failures_total",
			Help: "Notification channel failures by channel",
		},
		[]string{"channel"},
	)
)

type MonitoringService struct {
	context.DefaultService

	port     int
	registry *prometheus.Registry
}

func (svc MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *context.Context) error {
	svc.port = DEFAULT_PROMETHEUS_PORT
	if port := os.Getenv("PROMETHEUS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			svc.port = p
		}
	}

	svc.registry = prometheus.NewRegistry()
	svc.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequestsTotal,
		httpRequestDurationSeconds,
		rateLimitTrackedIPs,
		rateLimitBlockedIPs,
		whatsappMessagesSent,
		notificationFailures,
	)

	return svc.DefaultService.Configure(ctx)
}

func (svc *MonitoringService) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(svc.registry, promhttp.HandlerOpts{}))

	go func() {
		addr := fmt.Sprintf(":%d", svc.port)
		log.Infof("Prometheus metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Error("Prometheus metrics server stopped")
		}
	}()

	return nil
}

// Middleware records request counts and latency per route.
func (svc *MonitoringService) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		endpoint := c.Route().Path
		statusLabel := strconv.Itoa(status)

		httpRequestsTotal.WithLabelValues(endpoint, c.Method(), statusLabel).Inc()
		httpRequestDurationSeconds.WithLabelValues(endpoint, c.Method(), statusLabel).
			Observe(time.Since(start).Seconds())

		return err
	}
}
