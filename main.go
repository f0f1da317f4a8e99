package main

import (
	"time"

	"github.com/jessevdk/go-flags"
	_ "github.com/lockhub-io/server/integrations/virtual"
	"github.com/lockhub-io/server/server"
	"github.com/lockhub-io/server/settings"
	"github.com/lockhub-io/server/worker"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		panic(err)
	}

	s := settings.Load(options)
	s.SystemLogger().Info("Starting lockhub server")

	if delay := s.MasterSettings().DelayedStart; delay > 0 {
		time.Sleep(time.Duration(delay) * time.Second)
	}

	host := worker.NewHost(s)
	host.Start()

	srv, err := server.NewServer(s, host)
	if err != nil {
		s.SystemLogger().Fatal("Failed to start lockhub server", err)
	}

	srv.Start()
}
