package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"apiaryadmin/internal/database"
	"apiaryadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "apiary.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Apiary{},
		&domain.Hive{},
		&domain.Inspection{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM inspections")
	db.Exec("DELETE FROM hives")
	db.Exec("DELETE FROM apiaries")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "adminas",
		Email:        "admin@apiaryadmin.lt",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: adminas / admin123")

	beekeepers := []domain.User{}
	usernames := []string{"jonas", "ruta", "marius"}
	for _, username := range usernames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("bitutes123"), bcrypt.DefaultCost)
		keeper := domain.User{
			Username:     username,
			Email:        fmt.Sprintf("%s@pastas.lt", username),
			PasswordHash: string(hash),
			Role:         domain.RoleBeekeeper,
		}
		db.Create(&keeper)
		beekeepers = append(beekeepers, keeper)
	}
	log.Printf("Beekeepers created: %d (password bitutes123)", len(beekeepers))

	// ================== APIARIES ==================
	log.Println("Creating apiaries...")

	locations := []string{"Vilnius outskirts", "Kaunas forest edge", "Trakai lakeside", "Dzukija pinewood"}
	apiaries := []domain.Apiary{}
	for i, keeper := range beekeepers {
		a := domain.Apiary{
			Name:     fmt.Sprintf("Apiary %d", i+1),
			Location: locations[i%len(locations)],
			UserID:   keeper.ID,
		}
		db.Create(&a)
		apiaries = append(apiaries, a)
	}

	// ================== HIVES ==================
	log.Println("Creating hives...")

	descriptions := []string{
		"Dadant hive, strong colony",
		"Langstroth, new queen this spring",
		"Top-bar hive, calm bees",
	}
	hives := []domain.Hive{}
	for _, a := range apiaries {
		count := 2 + rand.Intn(2)
		for j := 0; j < count; j++ {
			h := domain.Hive{
				Name:        fmt.Sprintf("Hive %c", 'A'+j),
				Description: descriptions[rand.Intn(len(descriptions))],
				ApiaryID:    a.ID,
				UserID:      a.UserID,
			}
			db.Create(&h)
			hives = append(hives, h)
		}
	}

	// ================== INSPECTIONS ==================
	log.Println("Creating inspections...")

	titles := []string{"Spring check", "Queen sighting", "Varroa count", "Honey super added"}
	notes := []string{
		"Brood pattern looks healthy",
		"Seven frames of bees, laying well",
		"Mite drop below threshold",
		"Added second super, strong flow",
	}
	total := 0
	for _, h := range hives {
		count := 1 + rand.Intn(3)
		for j := 0; j < count; j++ {
			ins := domain.Inspection{
				Title:  titles[rand.Intn(len(titles))],
				Date:   time.Now().AddDate(0, 0, -rand.Intn(60)),
				Notes:  notes[rand.Intn(len(notes))],
				HiveID: h.ID,
				UserID: h.UserID,
			}
			db.Create(&ins)
			total++
		}
	}

	log.Printf("Seed completed: users=%d apiaries=%d hives=%d inspections=%d",
		len(beekeepers)+1, len(apiaries), len(hives), total)
}
