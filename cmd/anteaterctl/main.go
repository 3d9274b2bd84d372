// Command anteaterctl is the operator tool for the anteater server's store.
// It talks directly to the configured database, bypassing the HTTP layer:
//
//	anteaterctl schema                       apply migrations / ensure tables
//	anteaterctl signup <username> <password> create a player account
//	anteaterctl login <username> <password>  verify credentials, print a token
//	anteaterctl promote <username>           grant admin rights to an account
//
// Configuration comes from the same ANTEATER_* environment variables the
// server reads. Exits 0 on success; otherwise non-zero with the error kind
// on stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anteater-game/server/internal/clock"
	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/service"
	"github.com/anteater-game/server/internal/store"
)

const usage = `usage:
  anteaterctl schema
  anteaterctl signup <username> <password>
  anteaterctl login <username> <password>
  anteaterctl promote <username>`

// Exit codes reported to the shell. Zero is success.
const (
	exitFailure      = 1
	exitUsage        = 2
	exitUnauthorized = 3
	exitNotFound     = 4
	exitConflict     = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}

	cfg, err := config.GetEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return exitFailure
	}

	ctx := context.Background()

	// Service-layer diagnostics stay quiet; the CLI reports outcomes itself.
	log := logger.Nop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store unavailable: %v\n", err)
		return exitFailure
	}
	defer db.Close()

	switch args[0] {
	case "schema":
		return runSchema(db, cfg.Storage.DB.Driver)
	case "signup":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, usage)
			return exitUsage
		}
		return runSignUp(ctx, db, cfg, log, args[1], args[2])
	case "login":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, usage)
			return exitUsage
		}
		return runLogin(ctx, db, cfg, log, args[1], args[2])
	case "promote":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, usage)
			return exitUsage
		}
		return runPromote(ctx, db, cfg, log, args[1])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s\n", args[0], usage)
		return exitUsage
	}
}

// runSchema brings the store's schema up to date. The SQLite connector
// bootstraps its tables on connect, so only PostgreSQL needs migrations.
func runSchema(db *store.DB, driver string) int {
	if driver == config.DriverPostgres {
		if err := db.Migrate(); err != nil {
			fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
			return exitFailure
		}
	}

	fmt.Println("schema is up to date")
	return 0
}

func runSignUp(ctx context.Context, db *store.DB, cfg *config.StructuredConfig, log *logger.Logger, username, password string) int {
	services := service.NewServices(store.NewRepositories(db, log), *cfg, clock.New(), log)

	playerID, err := services.AuthService.SignUp(ctx, username, password)
	if err != nil {
		return reportServiceError(err)
	}

	fmt.Printf("created player %q (id %d)\n", username, playerID)
	return 0
}

func runLogin(ctx context.Context, db *store.DB, cfg *config.StructuredConfig, log *logger.Logger, username, password string) int {
	services := service.NewServices(store.NewRepositories(db, log), *cfg, clock.New(), log)

	playerID, err := services.AuthService.Login(ctx, username, password)
	if err != nil {
		return reportServiceError(err)
	}

	token, err := services.AuthService.CreateToken(ctx, playerID)
	if err != nil {
		return reportServiceError(err)
	}

	fmt.Printf("login ok (player id %d)\ntoken: %s\n", playerID, token.SignedString)
	return 0
}

// runPromote grants admin rights to an existing account. This is the
// bootstrap path for the first admin: the HTTP promote endpoint itself
// requires an admin caller, so a fresh deployment promotes here.
func runPromote(ctx context.Context, db *store.DB, cfg *config.StructuredConfig, log *logger.Logger, username string) int {
	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, *cfg, clock.New(), log)

	player, err := repos.Players.FindPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			fmt.Fprintln(os.Stderr, "unknown player")
			return exitNotFound
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	if err := services.AuthService.PromoteAdmin(ctx, player.PlayerID); err != nil {
		return reportServiceError(err)
	}

	fmt.Printf("player %q (id %d) is now an admin\n", username, player.PlayerID)
	return 0
}

// reportServiceError prints the error kind to stderr and picks the matching
// exit code.
func reportServiceError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidLimit):
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		return exitUsage
	case errors.Is(err, service.ErrInvalidCredentials):
		fmt.Fprintf(os.Stderr, "invalid credentials\n")
		return exitUnauthorized
	case errors.Is(err, service.ErrUnknownPlayer):
		fmt.Fprintf(os.Stderr, "unknown player\n")
		return exitNotFound
	case errors.Is(err, service.ErrDuplicateUsername):
		fmt.Fprintf(os.Stderr, "username already taken\n")
		return exitConflict
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
}
