// Command migrate applies or inspects the goose SQL migrations.
//
// Usage:
//
//	migrate [-dir path] up|down|status|version
//
// The DSN comes from the database section of the configuration
// (DATABASE_DSN or the YAML file at CONFIG_PATH).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "", "directory with goose SQL migrations (default: embedded)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-dir path] up|down|status|version")
		os.Exit(1)
	}

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.OpenSQL(dbCfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db, *dir)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(ctx, provider, command); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func run(ctx context.Context, p *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
		return err
	case "down":
		r, err := p.Down(ctx)
		if r != nil {
			fmt.Printf("rolled back %s (%s)\n", r.Source.Path, r.Duration)
		}
		return err
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-25s %s\n", applied, s.Source.Path)
		}
		return nil
	case "version":
		v, err := p.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
