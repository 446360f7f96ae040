package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulseboard/pulseboard-api/config"
	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

type seedClub struct {
	clubID      int64
	name        string
	description string
	category    entity.Category
}

type seedEvent struct {
	clubID   int64
	title    string
	desc     string
	date     time.Time
	timeDisp string
	location string
	badge    entity.Badge
	color    string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demopass123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		"Demo Student", "demo@campus.edu", string(hash)); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	clubs := []seedClub{
		{101, "Robotics Club", "Build and battle autonomous robots.", entity.CategoryTechnical},
		{102, "Drama Society", "Stage productions every semester.", entity.CategoryCultural},
		{103, "Football Club", "Inter-college league and weekend practice.", entity.CategorySports},
		{104, "Literature Circle", "Weekly readings and an annual zine.", entity.CategoryLiterary},
		{105, "Photography Guild", "Photo walks and darkroom access.", entity.CategoryOther},
	}
	for _, c := range clubs {
		if _, err := db.Exec(`
			INSERT INTO clubs (club_id, name, description, category)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (club_id) DO NOTHING`,
			c.clubID, c.name, c.description, string(c.category)); err != nil {
			log.Fatalf("seed club %q: %v", c.name, err)
		}
	}

	now := time.Now()
	events := []seedEvent{
		{101, "RoboWars Qualifier", "Bring your bots. Arena opens at noon.", now.Add(48 * time.Hour), "12:00 PM", "Engineering Block", entity.BadgeUpcoming, "#bae6fd"},
		{101, "Soldering Workshop", "Hands-on intro for first years.", now.Add(2 * time.Hour), "4:00 PM", "Makerspace", entity.BadgeLive, "#bae6fd"},
		{102, "Autumn Play Auditions", "All roles open, no experience needed.", now.Add(72 * time.Hour), "5:30 PM", "Auditorium", entity.BadgeUpcoming, "#fef08a"},
		{103, "Derby Screening", "Big screen at the student center.", now.Add(24 * time.Hour), "8:00 PM", "Student Center", entity.BadgeUpcoming, "#bbf7d0"},
		{104, "Open Mic Poetry", "Sign-up sheet at the door.", now.Add(96 * time.Hour), "7:00 PM", "Cafe Lawn", entity.BadgeUpcoming, "#ddd6fe"},
	}
	for _, e := range events {
		var exists bool
		if err := db.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM events WHERE club_id = $1 AND title = $2)`,
			e.clubID, e.title).Scan(&exists); err != nil {
			log.Fatalf("check event %q: %v", e.title, err)
		}
		if exists {
			continue
		}
		if _, err := db.Exec(`
			INSERT INTO events (club_id, title, description, date, time_display, location, icon, badge, color)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.clubID, e.title, e.desc, e.date, e.timeDisp, e.location, entity.DefaultEventIcon, string(e.badge), e.color); err != nil {
			log.Fatalf("seed event %q: %v", e.title, err)
		}
	}

	log.Println("seed complete: 1 user, 5 clubs, 5 events")
}
