package app

import (
	"github.com/amaumene/seasonsync/internal/api"
	"github.com/amaumene/seasonsync/internal/config"
	"github.com/amaumene/seasonsync/internal/controllers"
	"github.com/amaumene/seasonsync/internal/scheduler"
	"github.com/sirupsen/logrus"
)

// App holds the wired components of the daemon
type App struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Reconciler *controllers.Reconciler
	Scheduler  *scheduler.Scheduler
	Server     *api.Server // nil when the operational server is disabled
}

// NewApp assembles the application
func NewApp(
	cfg *config.Config,
	logger *logrus.Logger,
	reconciler *controllers.Reconciler,
	sched *scheduler.Scheduler,
	server *api.Server,
) *App {
	return &App{
		Config:     cfg,
		Logger:     logger,
		Reconciler: reconciler,
		Scheduler:  sched,
		Server:     server,
	}
}
