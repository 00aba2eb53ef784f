// Command migrate applies the embedded atlas migrations and can seed demo bookings.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/infra/db"
	"consultation-booking/internal/infra/repository"
	sqlc "consultation-booking/internal/infra/sqlc/generated"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	var (
		atlasBin = flag.String("atlas", "atlas", "path to the atlas binary")
		seed     = flag.Int("seed", 0, "number of demo bookings to insert after migrating")
		dryRun   = flag.Bool("dry-run", false, "print pending migrations without applying them")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := apply(ctx, *atlasBin, cfg.DB.BuildDSN(), *dryRun); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	if *seed > 0 && !*dryRun {
		if err := seedBookings(ctx, cfg, *seed); err != nil {
			slog.Error("Seeding failed", "error", err)
			os.Exit(1)
		}
	}
}

func apply(ctx context.Context, atlasBin, dsn string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("Applied migration", "file", f.Name, "dry_run", dryRun)
	}
	slog.Info("Schema is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

func seedBookings(ctx context.Context, cfg config.Config, n int) error {
	loc, err := cfg.Business.Location()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	cmds := commands.NewBookingAdminCommands(repository.NewBookingRepository(sqlc.New(), pool))

	bookings, err := demoBookings(time.Now(), n, cfg.Business.WindowDays, loc)
	if err != nil {
		return err
	}
	saved, err := cmds.Seed(ctx, bookings)
	if err != nil {
		return err
	}
	slog.Info("Seeded demo bookings", "count", len(saved))
	return nil
}
