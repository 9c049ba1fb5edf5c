package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/passby/passby-backend/config"
	"github.com/passby/passby-backend/pkg/helpers"
)

// Seeds two demo users that have passed each other today, so the
// /api/passed/today endpoint has something to show right away.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	alice := seedUser(db, "alice@example.com", "password123", "Alice", "allie")
	bob := seedUser(db, "bob@example.com", "password123", "Bob", "bobby")

	now := time.Now()
	for _, pair := range [][2]int64{{alice, bob}, {bob, alice}} {
		if _, err := db.Exec(`
			INSERT INTO passed_user_events (user_id, other_user_id, passed_at)
			VALUES ($1, $2, $3)
		`, pair[0], pair[1], now); err != nil {
			log.Fatalf("failed to seed passed event: %v", err)
		}
	}

	if _, err := db.Exec(`
		INSERT INTO fitness_records (user_id, steps, distance_meters, recorded_at)
		VALUES ($1, 4200, 3150, $2)
	`, alice, now.Add(-time.Hour)); err != nil {
		log.Fatalf("failed to seed fitness record: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO geofence_events (user_id, zone_id, event_type, occurred_at)
		VALUES ($1, 'home', 'entry', $2), ($1, 'home', 'exit', $3)
	`, alice, now.Add(-2*time.Hour), now.Add(-time.Hour)); err != nil {
		log.Fatalf("failed to seed geofence events: %v", err)
	}

	fmt.Printf("seeded users: alice=%d bob=%d (password: password123)\n", alice, bob)
}

func seedUser(db *sql.DB, email, password, name, nickname string) int64 {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	if _, err := db.Exec(`
		INSERT INTO user_info (user_id, nickname, avatar_url, bio)
		VALUES ($1, $2, '', '')
		ON CONFLICT (user_id) DO UPDATE SET nickname = EXCLUDED.nickname
	`, id, nickname); err != nil {
		log.Fatalf("failed to seed user_info for %s: %v", email, err)
	}
	return id
}
