// Package api is the HTTP surface of the distribution core: the agent
// wire protocol under /api/v1/client, the operator API under /api/v1,
// health, Prometheus metrics and the WebSocket event stream.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/dispatch"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/metrics"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/storage"
)

// Services bundles the per-domain services the server dispatches to.
type Services struct {
	Agents     *services.AgentService
	Tasks      *services.TaskService
	Attacks    *services.AttackService
	Campaigns  *services.CampaignService
	Projects   *services.ProjectService
	HashLists  *services.HashListService
	Resources  *services.ResourceService
	Cracks     *services.CrackService
	Statuses   *services.StatusService
	Benchmarks *services.BenchmarkService
}

// Server hosts the HTTP API.
type Server struct {
	cfg        *config.ServerConfig
	echo       *echo.Echo
	httpServer *http.Server

	dbClient *database.Client
	signer   *storage.Signer

	agentService     *services.AgentService
	taskService      *services.TaskService
	attackService    *services.AttackService
	campaignService  *services.CampaignService
	projectService   *services.ProjectService
	hashListService  *services.HashListService
	resourceService  *services.ResourceService
	crackService     *services.CrackService
	statusService    *services.StatusService
	benchmarkService *services.BenchmarkService

	matcher     *dispatch.Matcher
	connManager *events.ConnectionManager

	polls *pollGovernor
}

// NewServer wires the HTTP server. connManager may be nil, which turns
// the event stream endpoint into a 503.
func NewServer(cfg *config.ServerConfig, db *database.Client, svcs Services,
	matcher *dispatch.Matcher, signer *storage.Signer, connManager *events.ConnectionManager) *Server {
	s := &Server{
		cfg:              cfg,
		dbClient:         db,
		signer:           signer,
		agentService:     svcs.Agents,
		taskService:      svcs.Tasks,
		attackService:    svcs.Attacks,
		campaignService:  svcs.Campaigns,
		projectService:   svcs.Projects,
		hashListService:  svcs.HashLists,
		resourceService:  svcs.Resources,
		crackService:     svcs.Cracks,
		statusService:    svcs.Statuses,
		benchmarkService: svcs.Benchmarks,
		matcher:          matcher,
		connManager:      connManager,
		polls:            newPollGovernor(cfg),
	}

	s.echo = echo.New()
	s.echo.Use(securityHeaders())
	s.echo.Use(requestMetrics())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/api/v1/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/api/v1/events/ws", s.wsHandler)

	// Registration exchanges a one-time csi_ token carried in the body,
	// and signed downloads carry their authorization in the URL itself;
	// neither goes through the bearer middleware.
	e.POST("/api/v1/client/agents", s.registerAgentHandler)
	e.GET("/api/v1/client/attacks/:id/hash_list", s.downloadHashListHandler)

	client := e.Group("/api/v1/client", s.agentAuth())
	client.GET("/agents/:id", s.getOwnAgentHandler)
	client.POST("/agents/:id/benchmark", s.submitBenchmarkHandler)
	client.POST("/agents/:id/heartbeat", s.heartbeatHandler)
	client.POST("/agents/:id/shutdown", s.shutdownAgentHandler)
	client.POST("/agents/:id/error", s.agentErrorHandler)
	client.GET("/configuration", s.configurationHandler)
	client.GET("/authenticate", s.authenticateHandler)
	client.GET("/tasks/next", s.nextTaskHandler)
	client.GET("/attacks/:id", s.getClientAttackHandler)
	client.POST("/tasks/:id/status", s.taskStatusHandler)
	client.POST("/tasks/:id/cracks", s.taskCracksHandler)
	client.POST("/tasks/:id/error", s.taskErrorHandler)
	client.POST("/tasks/:id/exhausted", s.taskExhaustedHandler)
	client.POST("/tasks/:id/completed", s.taskCompletedHandler)
	client.POST("/tasks/:id/abandon", s.taskAbandonHandler)
	client.POST("/tasks/:id/cancel", s.taskCancelHandler)
	client.GET("/tasks/:id/zaps", s.taskZapsHandler)

	op := e.Group("/api/v1")
	op.POST("/projects", s.createProjectHandler)
	op.GET("/projects", s.listProjectsHandler)
	op.GET("/projects/:id", s.getProjectHandler)

	op.POST("/hash_lists", s.createHashListHandler)
	op.GET("/hash_lists/:id", s.getHashListHandler)
	op.POST("/hash_lists/:id/items", s.addHashItemsHandler)

	op.POST("/resources", s.createResourceHandler)
	op.GET("/resources", s.listResourcesHandler)
	op.GET("/resources/:id", s.getResourceHandler)
	op.PUT("/resources/:id/line_count", s.setLineCountHandler)
	op.DELETE("/resources/:id", s.deleteResourceHandler)

	op.POST("/campaigns", s.createCampaignHandler)
	op.GET("/campaigns", s.listCampaignsHandler)
	op.GET("/campaigns/:id", s.getCampaignHandler)
	op.PATCH("/campaigns/:id", s.updateCampaignHandler)
	op.DELETE("/campaigns/:id", s.deleteCampaignHandler)
	op.GET("/campaigns/:id/progress", s.campaignProgressHandler)
	op.POST("/campaigns/:id/start", s.startCampaignHandler)
	op.POST("/campaigns/:id/pause", s.pauseCampaignHandler)
	op.POST("/campaigns/:id/resume", s.resumeCampaignHandler)
	op.POST("/campaigns/:id/stop", s.stopCampaignHandler)
	op.POST("/campaigns/:id/archive", s.archiveCampaignHandler)

	op.POST("/campaigns/:id/attacks", s.createAttackHandler)
	op.GET("/campaigns/:id/attacks", s.listAttacksHandler)
	op.GET("/attacks/:id", s.getAttackHandler)
	op.PATCH("/attacks/:id", s.updateAttackHandler)
	op.DELETE("/attacks/:id", s.deleteAttackHandler)
	op.POST("/attacks/:id/reset", s.resetAttackHandler)
	op.POST("/attacks/:id/abandon", s.abandonAttackHandler)
	op.POST("/attacks/:id/move", s.moveAttackHandler)

	op.GET("/tasks/:id/cracks", s.listTaskCracksHandler)
	op.GET("/tasks/:id/statuses", s.taskStatusHistoryHandler)

	op.POST("/agents", s.preRegisterAgentHandler)
	op.GET("/agents", s.listAgentsHandler)
	op.GET("/agents/:id", s.getAgentHandler)
	op.POST("/agents/:id/enable", s.enableAgentHandler)
	op.POST("/agents/:id/disable", s.disableAgentHandler)
	op.DELETE("/agents/:id", s.deleteAgentHandler)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use this to
// bind an ephemeral port before the server goroutine starts.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
