package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/migrations"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/pkg/log"
)

// Aplica ou desfaz o schema do banco: migrate -direction=up|down
func main() {
	direction := flag.String("direction", "up", "up ou down")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	switch *direction {
	case "up":
		err = migrations.Up(conn.DB)
	case "down":
		err = migrations.Down(conn.DB)
	default:
		logrus.Fatalf("Direção inválida: %s", *direction)
	}

	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}

	logrus.WithField("direction", *direction).Info("Migrações executadas com sucesso")
}
