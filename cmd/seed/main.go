package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"

	"github.com/pretheevi/skillswapserver/internal/database"
	"github.com/pretheevi/skillswapserver/internal/domain"
	"github.com/pretheevi/skillswapserver/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var demoUsers = []struct {
	Name  string
	Email string
}{
	{"byte_bunny", "bunny@demo.com"},
	{"glitch_goblin", "goblin@demo.com"},
	{"nerdy_nachos", "nacho@demo.com"},
	{"wifi_warrior", "wifi@demo.com"},
	{"crypto_crush", "crypto@demo.com"},
	{"java_junkie", "java@demo.com"},
	{"sigma_snake", "snake@demo.com"},
	{"goofy_groot", "groot@demo.com"},
	{"meme_machine", "meme@demo.com"},
	{"pixel_panda", "panda@demo.com"},
}

var demoBios = []string{
	"Coffee-powered coder",
	"I break bugs for fun",
	"Learning by doing",
	"Let's build cool stuff",
	"React + Node enthusiast",
}

var demoSkills = []struct {
	Title       string
	Category    domain.SkillCategory
	Description string
}{
	{"React.js Developer", domain.CategoryWeb, "I build cool UIs using React + Tailwind."},
	{"UI/UX Designer", domain.CategoryDesign, "Figma wizard, pixel-perfect layouts."},
	{"Python Data Analyst", domain.CategoryData, "I explore datasets and build insights."},
	{"Flutter App Dev", domain.CategoryMobile, "Native-like mobile apps with Dart."},
	{"SEO Strategist", domain.CategoryMarketing, "Boosting rankings like a rocket"},
	{"English Tutor", domain.CategoryLanguage, "Helping you speak confidently."},
	{"Full Stack Developer", domain.CategoryWeb, "MERN stack expert with 5+ years experience"},
	{"Graphic Designer", domain.CategoryDesign, "Creating stunning visuals for brands"},
	{"Machine Learning Engineer", domain.CategoryData, "Building AI models for real-world problems"},
	{"iOS Developer", domain.CategoryMobile, "Native iOS apps with SwiftUI"},
	{"Social Media Manager", domain.CategoryMarketing, "Growing your social presence organically"},
	{"Spanish Teacher", domain.CategoryLanguage, "Hablo espanol y te enseno tambien"},
}

var levels = []domain.SkillLevel{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelExpert}

func avatarFor(name string) string {
	return "https://api.dicebear.com/9.x/initials/svg?seed=" + url.QueryEscape(name)
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "./skillswap.sqlite"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Initialize(db); err != nil {
		log.Fatal("Schema initialization failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM user_follows")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM skill_media")
	db.Exec("DELETE FROM skills")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	skills := repository.NewSkillRepository(db)
	follows := repository.NewFollowRepository(db)

	log.Println("Creating users...")
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	created := make([]*domain.User, 0, len(demoUsers))
	for i, du := range demoUsers {
		u := &domain.User{
			Name:         du.Name,
			Email:        du.Email,
			PasswordHash: string(hash),
			Avatar:       avatarFor(du.Name),
			Bio:          demoBios[i%len(demoBios)],
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user:", err)
		}
		created = append(created, u)
	}

	log.Println("Creating skills...")
	totalSkills := 0
	for _, u := range created {
		count := rand.Intn(3) + 1
		for i := 0; i < count; i++ {
			ds := demoSkills[rand.Intn(len(demoSkills))]
			s := &domain.Skill{
				UserID:      u.ID,
				Title:       ds.Title,
				Category:    ds.Category,
				Level:       levels[rand.Intn(len(levels))],
				Description: ds.Description,
			}
			if err := skills.Create(ctx, s); err != nil {
				log.Fatal("seed skill:", err)
			}
			totalSkills++
		}
	}

	log.Println("Creating follows...")
	totalFollows := 0
	for _, u := range created {
		for _, other := range created {
			if u.ID == other.ID || rand.Intn(4) != 0 {
				continue
			}
			if err := follows.Create(ctx, u.ID, other.ID); err != nil {
				log.Fatal("seed follow:", err)
			}
			totalFollows++
		}
	}

	fmt.Printf("Seeded %d users, %d skills, %d follows\n", len(created), totalSkills, totalFollows)
	fmt.Println("All demo accounts use the password: demo1234")
}
