// Package server contains the lockhub REST and WS server.
package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// LockHubServer describes the hub node.
type LockHubServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	host  providers.IDeviceHostProvider
	state IServerStateProvider

	wsSettings websocket.Upgrader
}

// NewServer constructs a new hub server.
func NewServer(settings providers.ISettingsProvider, host providers.IDeviceHostProvider) (*LockHubServer, error) {
	server := LockHubServer{
		Logger:   settings.SystemLogger(),
		Settings: settings,

		host:  host,
		state: newServerState(settings, host),

		wsSettings: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	return &server, nil
}

// Start launches the hub server. Blocks until a termination signal.
func (s *LockHubServer) Start() {
	router := mux.NewRouter()
	s.registerAPI(router)
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", s.Settings.MasterSettings().Port),
			handlers.RecoveryHandler()(router))
		if err != nil {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.MasterSettings().Port),
		common.LogSystemToken, logSystem, common.LogNodeToken, s.Settings.NodeID())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	for range c {
		s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
		s.Stop()
		os.Exit(0)
	}
}

// Stop stops internal processes.
func (s *LockHubServer) Stop() {
	s.state.Stop()
	s.host.Stop()
	s.Settings.Executor().Stop()
}

// All API registration.
func (s *LockHubServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/status", s.getStatus).Methods(http.MethodGet)
	apiRouter.HandleFunc("/device", s.getDevices).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/device/{%s}/{%s}", urlDeviceSelector, urlCommandName),
		s.deviceCommand).Methods(http.MethodPost)
	apiRouter.HandleFunc("/ws", s.handleWS)
	apiRouter.Use(s.logMiddleware)
}
