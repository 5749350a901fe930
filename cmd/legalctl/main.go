// Command legalctl is a small operator tool for LegalLite. Its one job today
// is creating accounts directly against the database, for bootstrapping and
// support work.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/legalease/legallite/internal/buildinfo"
	"github.com/legalease/legallite/internal/server/config"
	"github.com/legalease/legallite/internal/server/repositories/repomanager"
	"github.com/legalease/legallite/internal/server/services"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	_ = godotenv.Load()

	email := flag.String("email", "", "email of the account to create")
	dsn := flag.String("d", "", "database dsn (defaults to server config)")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: legalctl -email user@example.com [-d dsn]")
	}

	if *dsn == "" {
		cfg := config.LoadConfig()
		*dsn = cfg.DatabaseDSN
	}

	fmt.Print("Password: ")
	password, err := readPassword()
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	ctx := context.Background()

	rm, err := repomanager.NewPostgresRepositoryManager(*dsn)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Close()

	if err := rm.RunMigrations(ctx); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	userService := services.NewUserService(rm.Users())

	user, err := userService.Register(ctx, *email, string(password))
	if err != nil {
		log.Fatalf("creating user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
}
