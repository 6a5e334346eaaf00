package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zatekoja/dermrate/internal/adapters/database"
	"github.com/zatekoja/dermrate/internal/adapters/providers/catalog"
	"github.com/zatekoja/dermrate/internal/application/services"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/dermrate/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS doctors (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT UNIQUE REFERENCES users(id),
	name TEXT NOT NULL,
	specialization TEXT NOT NULL,
	average_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reviews (
	id BIGSERIAL PRIMARY KEY,
	doctor_id BIGINT NOT NULL REFERENCES doctors(id),
	user_id BIGINT NOT NULL REFERENCES users(id),
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reviews_doctor_created ON reviews (doctor_id, created_at);

CREATE TABLE IF NOT EXISTS recommendations (
	id BIGSERIAL PRIMARY KEY,
	identifier TEXT NOT NULL UNIQUE,
	doctor_id BIGINT NOT NULL REFERENCES doctors(id),
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS recommendation_products (
	id BIGSERIAL PRIMARY KEY,
	recommendation_id BIGINT NOT NULL REFERENCES recommendations(id),
	product_id BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rec_products_rec ON recommendation_products (recommendation_id);
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			DROP TABLE IF EXISTS
				recommendation_products,
				recommendations,
				reviews,
				doctors,
				users
			CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	userRepo := database.NewUserAdapter(pgClient)
	doctorRepo := database.NewDoctorAdapter(pgClient)
	reviewRepo := database.NewReviewAdapter(pgClient)
	recRepo := database.NewRecommendationAdapter(pgClient)

	userService := services.NewUserService(userRepo)
	doctorService := services.NewDoctorService(doctorRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, doctorRepo)
	recService := services.NewRecommendationService(recRepo, doctorRepo, catalog.NewMockProvider())

	// 1. Seed accounts
	type account struct {
		username, password string
	}
	accounts := []account{
		{"drokafor", "password1"},
		{"dradeyemi", "password2"},
		{"patient1", "password3"},
		{"patient2", "password4"},
	}
	userIDs := make(map[string]int64)
	for _, a := range accounts {
		user, err := userService.Register(ctx, a.username, a.password)
		if err != nil {
			log.Printf("Failed to create user %s: %v", a.username, err)
			continue
		}
		userIDs[a.username] = user.ID
	}

	// 2. Seed doctor profiles
	doctorSpecs := []struct {
		username, name, specialization string
	}{
		{"drokafor", "Dr. Amara Okafor", "Medical Dermatology"},
		{"dradeyemi", "Dr. Tunde Adeyemi", "Cosmetic Dermatology"},
	}
	doctorIDs := make(map[string]int64)
	for _, d := range doctorSpecs {
		doctor, err := doctorService.Create(ctx, userIDs[d.username], d.name, d.specialization)
		if err != nil {
			log.Printf("Failed to create doctor %s: %v", d.name, err)
			continue
		}
		doctorIDs[d.username] = doctor.ID
	}

	// 3. Seed reviews
	reviews := []struct {
		doctor, patient string
		rating          int
		comment         string
	}{
		{"drokafor", "patient1", 5, "Excellent dermatologist, very helpful with my eczema"},
		{"drokafor", "patient2", 4, "Good experience overall, would recommend"},
		{"drokafor", "patient1", 3, "The follow-up visit felt like a rush"},
		{"dradeyemi", "patient2", 5, "Amazing results, very pleased with the treatment"},
	}
	for _, r := range reviews {
		review := &entities.Review{
			DoctorID: doctorIDs[r.doctor],
			UserID:   userIDs[r.patient],
			Rating:   r.rating,
			Comment:  r.comment,
		}
		if _, err := reviewService.Create(ctx, review); err != nil {
			log.Printf("Failed to create review for %s: %v", r.doctor, err)
		}
	}

	// 4. Seed recommendations
	recSpecs := []struct {
		doctor   string
		notes    string
		products []int64
	}{
		{"drokafor", "Gentle cleanser morning and night", []int64{1, 2}},
		{"drokafor", "Moisturize after every wash", []int64{1, 3}},
		{"dradeyemi", "Sunscreen daily", []int64{2}},
	}
	for _, r := range recSpecs {
		rec, err := recService.Create(ctx, doctorIDs[r.doctor], r.notes, r.products)
		if err != nil {
			log.Printf("Failed to create recommendation for %s: %v", r.doctor, err)
			continue
		}
		log.Printf("Recommendation %s created for doctor %s", rec.Identifier, r.doctor)
	}

	log.Println("Seeding complete")
}
