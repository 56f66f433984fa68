package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the sqlite database and bootstraps the schema. The
// path comes from configuration so tests can run against ":memory:".
func InitDB(dbPath string) {
	var err error

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"username" TEXT NOT NULL DEFAULT '',
			"password_hash" TEXT NOT NULL,
			"kaonavi_code" TEXT NOT NULL DEFAULT '',
			"chatwork_id" TEXT NOT NULL DEFAULT '',
			"is_active" INTEGER NOT NULL DEFAULT 1
	);`
	createProfilesTable := `
	CREATE TABLE IF NOT EXISTS profiles (
			"user_id" TEXT PRIMARY KEY,
			"nickname" TEXT NOT NULL,
			"location" TEXT NOT NULL DEFAULT '',
			"hobby" TEXT NOT NULL DEFAULT '',
			"tweet" TEXT NOT NULL DEFAULT '',
			"introduction" TEXT NOT NULL DEFAULT '',
			"created_at" DATETIME NOT NULL,
			"updated_at" DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
	)`

	if _, err := db.Exec(createUsersTable); err != nil {
		log.Fatalf("InitDB(): Failed to create users table: %v", err)
	}
	if _, err := db.Exec(createProfilesTable); err != nil {
		log.Fatalf("InitDB(): Failed to create profiles table: %v", err)
	}
	log.Println("InitDB(): Init and create table successfully!")
}
