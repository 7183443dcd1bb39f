package main

import (
	"context"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

func run() error {
	server, cleanup, err := live(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	server.Log.Info().Str("address", server.Address).Msg("listening")
	return http.ListenAndServe(server.Address, server.Handler)
}

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("counter server stopped")
		os.Exit(1)
	}
}
