package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Daskott/aidline/app"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/gstorage"
	"github.com/Daskott/aidline/server/logger"
	"github.com/Daskott/aidline/server/work"
	"github.com/Daskott/aidline/shared"
	"github.com/gorilla/mux"
)

var (
	logg = logger.NewLogger()

	aidline     *app.App
	storage     gstorage.Storage
	storageConf shared.StorageConfig
	dataDir     string
)

func Start(config shared.Config, devMode bool) {
	var err error
	ctx := context.Background()

	dataDir, err = config.DataDirectory(devMode)
	fatalOnError(err)

	storageConf = config.Google.Storage
	if storageConf.EnableSqliteBackupAndSync {
		gs, err := gstorage.NewGStorage(ctx, config.Google.ApplicationCredentials)
		fatalOnError(err)
		defer gs.Close()
		storage = gs

		fatalOnError(restoreSqliteDb(ctx))
	}

	err = models.AutoMigrate(config.Sqlite.PassPhrase, dataDir)
	fatalOnError(err)

	aidline, err = app.New(ctx, config)
	fatalOnError(err)
	defer aidline.Close()

	workerPool := work.NewWorkerAdapter(config.Aidline.Cron.TimeZone)
	fatalOnError(registerJobHandlers(workerPool))
	fatalOnError(enqueueJobs(workerPool))
	workerPool.Start()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%v", config.Aidline.Listener.Port),
		Handler:      newRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	go serve(server)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cleanup(workerPool, server)
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	router.HandleFunc("/health", health).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(initialContextMiddleware)
	apiRouter.HandleFunc("/login", logIn).Methods("POST")
	apiRouter.HandleFunc("/jwks", jwks).Methods("GET")

	protectedRouter := apiRouter.NewRoute().Subrouter()
	protectedRouter.Use(protectedRouteMiddleware)

	protectedRouter.HandleFunc("/profile", findProfile).Methods("GET")
	protectedRouter.HandleFunc("/profile", updateProfile).Methods("PUT")

	protectedRouter.HandleFunc("/contacts", listContacts).Methods("GET")
	protectedRouter.HandleFunc("/contacts/selected", listSelectedContacts).Methods("GET")
	protectedRouter.HandleFunc("/contacts/{id}/toggle", toggleContact).Methods("POST")

	protectedRouter.HandleFunc("/sos", sosPanel).Methods("GET")
	protectedRouter.HandleFunc("/sos", triggerSOS).Methods("POST")
	protectedRouter.HandleFunc("/services/{number}/call", callService).Methods("POST")

	protectedRouter.HandleFunc("/chat", chatMessages).Methods("GET")
	protectedRouter.HandleFunc("/chat", sendChatMessage).Methods("POST")
	protectedRouter.HandleFunc("/chat", resetChat).Methods("DELETE")

	return router
}
