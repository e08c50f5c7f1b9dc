// migrate applies the embedded PostgreSQL schema migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pragma/auth-service/internal/infrastructure/config"
	"github.com/pragma/auth-service/internal/infrastructure/db/postgres"
)

func main() {
	direction := flag.String("direction", postgres.DirectionUp, "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.LoadPostgres(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.URL, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Printf("migrations applied (%s)\n", *direction)
}
