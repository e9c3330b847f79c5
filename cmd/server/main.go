package main

import (
	"github.com/klubbhq/klubb/internal/app/server"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	defer logging.Sync()

	srv := server.NewServer()
	if err := srv.Start(); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
