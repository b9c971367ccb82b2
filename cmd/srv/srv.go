package main

import (
	"os"
	"strconv"

	"github.com/famquest-app/backend/config"
	"github.com/famquest-app/backend/internal/domain"
	"github.com/famquest-app/backend/internal/repository"
	"github.com/famquest-app/backend/pkg/logger"
	"github.com/famquest-app/backend/pkg/router"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	memberRepo   repository.MemberRepository
	statRepo     repository.StatRepository
	activityRepo repository.ActivityRepository
	streakRepo   repository.StreakRepository

	activityDomain domain.ActivityDomain

	router *router.Router
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "dev"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "famquest"),
			Password: getEnv("MYSQL_PASSWORD", "famquest"),
			Database: getEnv("MYSQL_DATABASE", "famquest"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("API_HOST", ""),
			Port:         getEnv("API_PORT", "8080"),
			MaxLimit:     getEnvInt("API_MAX_LIMIT", 50),
			DefaultLimit: getEnvInt("API_DEFAULT_LIMIT", 20),
		},
		LogLevel: getEnvInt("LOG_LEVEL", logger.INFO),
	}
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.memberRepo = repository.NewMemberRepository()
	s.statRepo = repository.NewStatRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.streakRepo = repository.NewStreakRepository()
}

func (s *srv) loadDomains() {
	s.activityDomain = domain.NewActivityDomain(
		s.memberRepo, s.statRepo, s.activityRepo, s.streakRepo)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
