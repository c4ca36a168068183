package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed scripts/*.sql
var bootstrapScripts embed.FS

var ErrNoScripts = errors.New("could not find any *.sql files in schema folder scripts")

// Open opens the sqlite database at path and brings its schema up to date.
func Open(path string) (*sql.DB, error) {
	DB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}
	if err := BootstrapDB(DB); err != nil {
		DB.Close()
		return nil, fmt.Errorf("could not bootstrap database %s: %w", path, err)
	}
	return DB, nil
}

// BootstrapDB executes every embedded schema script against DB, in filename order. Scripts must be
// safe to run more than once.
func BootstrapDB(DB *sql.DB) error {
	entries, err := bootstrapScripts.ReadDir("scripts")
	if err != nil {
		return err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return ErrNoScripts
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := bootstrapScripts.ReadFile("scripts/" + name)
		if err != nil {
			return err
		}
		if _, err = DB.Exec(string(script)); err != nil {
			log.Printf("could not execute bootstrap script %s: %v", name, err)
			return fmt.Errorf("script %s: %w", name, err)
		}
		log.Printf("executed bootstrap script %s", name)
	}
	return nil
}
