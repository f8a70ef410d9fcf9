// Seeds the database with the admin account and a small sample dataset.
// Intended for local development; running it twice is safe.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin account email")
	password := flag.String("password", "changeme", "admin account password")
	withSamples := flag.Bool("samples", true, "insert sample content when the tables are empty")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewGormUserRepository()
	authService := service.NewAuthService(db, userRepo, &config.Cfg, logger)

	user, err := authService.EnsureUser(ctx, *email, *password)
	if err != nil {
		logger.Error("Error ensuring admin account", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Admin account ready", slog.String("email", user.Email))

	if *withSamples {
		if err := seedSamples(ctx, db, logger); err != nil {
			logger.Error("Error seeding sample content", slog.Any("error", err))
			os.Exit(1)
		}
	}

	logger.Info("Seeding finished")
}

func seedSamples(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Vocabulary{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Vocabulary table not empty, skipping samples", slog.Int64("count", count))
		return nil
	}

	now := time.Now()
	vocab := []*model.Vocabulary{
		{
			VocabID:       uuid.New(),
			KoreanWord:    "가다",
			BanglaMeaning: "যাওয়া",
			Romanization:  "gada",
			PartOfSpeech:  "verb",
			Explanation:   "One of the most common Korean verbs, used for movement away from the speaker toward another place.",
			Examples: []model.Example{
				{Korean: "학교에 가요.", Bangla: "আমি স্কুলে যাই।"},
			},
			Themes:    []string{"daily-life", "movement"},
			Chapters:  []int{1},
			VerbForms: &model.VerbForms{Present: "가요", Past: "갔어요", Future: "갈 거예요", Polite: "갑니다"},
		},
		{
			VocabID:       uuid.New(),
			KoreanWord:    "사과",
			BanglaMeaning: "আপেল",
			Romanization:  "sagwa",
			PartOfSpeech:  "noun",
			Themes:        []string{"food"},
			Chapters:      []int{2},
		},
		{
			VocabID:       uuid.New(),
			KoreanWord:    "예쁘다",
			BanglaMeaning: "সুন্দর",
			PartOfSpeech:  "adjective",
		},
	}

	resources := []*model.Resource{
		{
			ResourceID:  uuid.New(),
			Title:       "Hangul chart",
			Category:    "reference",
			Description: "Printable consonant and vowel chart for beginners.",
			Tags:        []string{"hangul", "beginner"},
			FilePath:    "https://example.com/files/hangul-chart.pdf",
		},
	}

	published := now
	blogs := []*model.Blog{
		{
			BlogID:      uuid.New(),
			Title:       "Getting started with Korean particles",
			Slug:        "getting-started-with-korean-particles",
			Content:     "# Particles\n\nKorean particles mark the grammatical role of the word they attach to...",
			Category:    "grammar",
			Tags:        []string{"particles", "beginner"},
			PublishedAt: &published,
		},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vocab).Error; err != nil {
			return err
		}
		if err := tx.Create(&resources).Error; err != nil {
			return err
		}
		if err := tx.Create(&blogs).Error; err != nil {
			return err
		}
		logger.Info("Sample content inserted",
			slog.Int("vocabulary", len(vocab)),
			slog.Int("resources", len(resources)),
			slog.Int("blogs", len(blogs)),
		)
		return nil
	})
}
