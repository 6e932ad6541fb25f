// Command reconcile grants SUPER_ADMIN on every church to the users whose email
// is listed in SUPER_ADMIN_EMAILS. It is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"church-planning-backend/internal/config"
	"church-planning-backend/internal/database"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/metrics"
	"church-planning-backend/internal/repository"
	"church-planning-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "maximum duration of the reconciliation")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	superAdmin := service.NewSuperAdminService(
		repository.NewUserRepository(db),
		repository.NewChurchRepository(db),
		repository.NewRoleRepository(db),
		cfg.SuperAdminEmails(),
		metrics.Noop{},
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := superAdmin.Reconcile(ctx)
	if err != nil {
		logrus.Fatal("Reconciliation failed:", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":    result.Users,
		"churches": result.Churches,
		"created":  result.Created,
	}).Info("Super admin reconciliation complete")
}
