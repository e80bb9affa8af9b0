// cmd/dbtools/migrate/main.go
//
// Applies the embedded schema migrations to a SQLite database without
// starting the server.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fixfirst/fixfirst/internal/db"
)

func main() {
	dbPath := flag.String("db", "data/fixfirst.db", "path to SQLite database")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create database directory")
	}

	database, err := db.New(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("Migration failed")
	}
	defer database.Close()

	log.Info().Str("db", *dbPath).Msg("Migrations applied")
}
