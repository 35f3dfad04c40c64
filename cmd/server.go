package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gotodo/internal/config"
	"gotodo/internal/core"
	"gotodo/internal/db"
	"gotodo/internal/http/handler"
	"gotodo/internal/http/handler/middleware"
	"gotodo/internal/http/payload"
	"gotodo/internal/http/server"
	"gotodo/internal/repository"
	"gotodo/pkg/jwt"
	"gotodo/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("gotodo", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewTodoRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// core service
	todoCore := core.NewTodoCore(
		logger,
		repo,
		jwtService)

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.DecodeValidator{},
		todoCore)

	// middleware
	authMw := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes; everything under /api/todos sits behind the auth gate
	mux.HandleFunc(handler.Register, todoHlr.HandleRegister)
	mux.HandleFunc(handler.Login, todoHlr.HandleLogin)
	mux.Handle(handler.ListTodos, authMw.Auth(http.HandlerFunc(todoHlr.HandleListTodos)))
	mux.Handle(handler.CreateTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleCreateTodo)))
	mux.Handle(handler.UpdateTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleUpdateTodo)))
	mux.Handle(handler.DeleteTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleDeleteTodo)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
