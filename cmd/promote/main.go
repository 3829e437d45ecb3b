// Command promote grants or revokes the admin role by email address. It is
// used to bootstrap the first reviewer account.
//
// Usage:
//
//	promote --email=user@example.com [--revoke]
//
// The DSN comes from the database section of the configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/gis-admissions-backend/internal/config"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	revoke := flag.Bool("revoke", false, "demote the user back to applicant")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--revoke]")
		os.Exit(1)
	}

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	role := domain.UserRoleAdmin
	if *revoke {
		role = domain.UserRoleUser
	}

	err = user.New(pool).SetRole(ctx, *email, role)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q, or already %s.\n", *email, role)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", *email, role)
}
