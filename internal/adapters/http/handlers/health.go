// Package handlers holds the gin handlers for the quote API, the operational
// probes under /-/ and the static page.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quote-service/internal/ports"
)

// ProbePrefix is where the operational endpoints live. Nothing under it is
// part of the quote API.
const ProbePrefix = "/-"

// BuildInfo describes the running binary. Version, Commit and BuildTime are
// set through ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the Go version of the current runtime.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves liveness, readiness, build info and metrics.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	metrics   http.Handler
}

// NewHealthHandler builds the probe handler. A nil gatherer falls back to the
// Prometheus default registry.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, gatherer prometheus.Gatherer) *HealthHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		metrics:   promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}
}

type probeResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Liveness always answers 200 while the process can serve HTTP.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, probeResponse{Status: "ok"})
}

// Readiness runs every registered check. Any unhealthy check turns the
// answer into 503 so the instance is taken out of rotation.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusOK, probeResponse{Status: string(ports.HealthStatusHealthy)})
		return
	}

	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, probeResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// Build reports the BuildInfo given at construction.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the Prometheus text format for the gatherer.
func (h *HealthHandler) MetricsHandler() http.Handler {
	return h.metrics
}

// RegisterHealthRoutes adds live, ready, build and metrics to rg.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.Build)
	rg.GET("/metrics", gin.WrapH(h.metrics))
}

// Mount registers the probes on engine under ProbePrefix.
func (h *HealthHandler) Mount(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group(ProbePrefix))
}
