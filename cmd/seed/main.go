package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sekolahdigital/siakad-backend/internal/config"
	"github.com/sekolahdigital/siakad-backend/internal/database"
	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/logger"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
	"github.com/sekolahdigital/siakad-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	idGen := identifier.NewNanoid()

	classRepo := repository.NewClassRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	classService := service.NewClassService(classRepo, idGen)
	subjectService := service.NewSubjectService(subjectRepo, log)
	studentService := service.NewStudentService(studentRepo, idGen)

	fmt.Println("=== Seeding Demo Data ===")

	// Classes. The admission engine places accepted applicants into the
	// first class by name, so 7A fills up first.
	classNames := []string{"7A", "7B", "8A", "8B", "9A", "9B"}
	classIDs := make([]string, 0, len(classNames))
	for _, name := range classNames {
		class, err := classService.Create(ctx, &model.CreateClassRequest{Name: name})
		if err != nil {
			fmt.Printf("Error creating class %s: %v\n", name, err)
			continue
		}
		classIDs = append(classIDs, class.ID)
		fmt.Printf("Created class %s (%s)\n", class.Name, class.ID)
	}
	if len(classIDs) == 0 {
		log.Fatal().Msg("No classes created, aborting seed")
	}

	// Subjects.
	subjectNames := []string{
		"Matematika", "Bahasa Indonesia", "Bahasa Inggris",
		"IPA", "IPS", "Pendidikan Agama", "PJOK", "Seni Budaya",
	}
	for _, name := range subjectNames {
		subject := &model.Subject{Name: name}
		if err := subjectService.Create(ctx, subject); err != nil {
			fmt.Printf("Error creating subject %s: %v\n", name, err)
			continue
		}
		fmt.Printf("Created subject %s (%s)\n", subject.Name, subject.ID)
	}

	// Students spread across the classes.
	names := []string{
		"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
		"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
		"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
		"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
		"Rafi Ahmad", "Siska Saraswati", "Toni Setiawan", "Umi Kalsum", "Vina Panduwinata",
		"Wahyu Hidayat", "Xena Maharani", "Yudi Pratama", "Zaki Anwar", "Alifia Zahra",
	}

	successCount := 0
	for i, name := range names {
		_, err := studentService.Create(ctx, &model.CreateStudentRequest{
			Name:    name,
			ClassID: classIDs[i%len(classIDs)],
		})
		if err != nil {
			fmt.Printf("Error creating student %s: %v\n", name, err)
		} else {
			successCount++
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, len(names))
}
