// setup-groups crea los grupos de permisos (administradores, stock, ventas) y,
// opcionalmente, usuarios de demostración. Es idempotente: puede ejecutarse
// varias veces sin duplicar nada.
//
// Los usuarios demo solo se crean si la contraseña correspondiente viene en el
// entorno; nunca hay contraseñas embebidas en el código:
//
//	SETUP_ADMIN_PASSWORD        → usuario "admin"        (grupo administradores)
//	SETUP_DEMO_STOCK_PASSWORD   → usuario "demo_stock"   (grupo stock)
//	SETUP_DEMO_VENTAS_PASSWORD  → usuario "demo_ventas"  (grupo ventas)
//
// Uso: go run ./cmd/setup-groups
package main

import (
	"context"
	"errors"
	"os"

	"github.com/jcastan/inventario-ventas/internal/application/auth"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/infrastructure/postgres"
	"github.com/jcastan/inventario-ventas/pkg/config"
	"github.com/jcastan/inventario-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "setup-groups",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	groupRepo := postgres.NewGroupRepository(pool)
	for _, g := range entity.DefaultGroups() {
		if err := groupRepo.Upsert(g); err != nil {
			log.Fatal().Err(err).Str("group", g.Name).Msg("crear grupo")
		}
		log.Info().Str("group", g.Name).Int("permissions", len(g.Permissions)).Msg("grupo configurado")
	}

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	demos := []struct {
		username string
		email    string
		group    string
		envVar   string
	}{
		{"admin", "admin@example.com", entity.GroupAdministradores, "SETUP_ADMIN_PASSWORD"},
		{"demo_stock", "stock@example.com", entity.GroupStock, "SETUP_DEMO_STOCK_PASSWORD"},
		{"demo_ventas", "ventas@example.com", entity.GroupVentas, "SETUP_DEMO_VENTAS_PASSWORD"},
	}

	for _, d := range demos {
		password := os.Getenv(d.envVar)
		if password == "" {
			log.Info().Str("user", d.username).Str("env", d.envVar).
				Msg("variable no definida, usuario demo omitido")
			continue
		}
		_, err := authUC.CreateUser(d.username, d.email, password, d.group)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("user", d.username).Msg("el usuario ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("user", d.username).Msg("crear usuario demo")
		}
		log.Info().Str("user", d.username).Str("group", d.group).Msg("usuario demo creado")
	}

	log.Info().Msg("setup-groups completado")
}
