// Command createadmin bootstraps the first administrator account.
// It is idempotent: if the username already exists, nothing is changed.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/platform/config"
	"github.com/oficinasys/service_order_app/internal/repositories/database/pgsql"
	"github.com/oficinasys/service_order_app/pkg/database"
)

func main() {
	username := flag.String("username", "admin", "username for the administrator account")
	password := flag.String("password", "", "password for the administrator account (falls back to ADMIN_PASSWORD)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *password == "" {
		logger.Error("No password provided: use -password or set ADMIN_PASSWORD")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	userService := services.NewUserService(repos.UserRepo)

	if existing, err := userService.GetUserByUsername(ctx, *username); err == nil {
		logger.Info("Administrator account already exists, nothing to do",
			slog.String("username", existing.Username))
		return
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	user, err := userService.CreateUser(ctx, dto.RegisterUserRequest{
		Username: *username,
		Password: *password,
		IsAdmin:  true,
	}, "")
	if err != nil {
		logger.Error("Failed to create administrator account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Administrator account created",
		slog.String("userID", user.UserID),
		slog.String("username", user.Username))
}
