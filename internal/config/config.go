package config

import (
	"os"
	"strconv"
	"time"

	"MemberDirectory_UnityProject/internal/kaonavi"
)

// Config is everything the process reads from the environment. main
// loads a .env file first, so local runs and containers behave the
// same way.
type Config struct {
	ServerAddr string
	DBPath     string

	Kaonavi kaonavi.ClientConfig
	Schema  kaonavi.Schema

	DefaultPerPage int
	DefaultPage    int
}

func Load() Config {
	cfg := Config{
		ServerAddr: envString("SERVER_ADDR", ":8080"),
		DBPath:     envString("DB_PATH", "./member_directory.db"),
		Kaonavi: kaonavi.ClientConfig{
			BaseURL:   envString("KAONAVI_BASE_URL", ""),
			APIKey:    os.Getenv("KAONAVI_API_KEY"),
			APISecret: os.Getenv("KAONAVI_API_SECRET"),
			Timeout:   time.Duration(envInt("KAONAVI_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Schema:         kaonavi.DefaultSchema(),
		DefaultPerPage: envInt("DEFAULT_PER_PAGE", 30),
		DefaultPage:    envInt("DEFAULT_PAGE", 1),
	}

	// The sheet/field numbering is tenant configuration; renumbering
	// upstream must not require a code change.
	cfg.Schema.SelfIntroSheetID = envInt("KAONAVI_SELF_INTRO_SHEET_ID", cfg.Schema.SelfIntroSheetID)
	cfg.Schema.BirthPlaceFieldID = envInt("KAONAVI_BIRTH_PLACE_FIELD_ID", cfg.Schema.BirthPlaceFieldID)
	cfg.Schema.JobDescriptionFieldID = envInt("KAONAVI_JOB_DESCRIPTION_FIELD_ID", cfg.Schema.JobDescriptionFieldID)
	cfg.Schema.CareerFieldID = envInt("KAONAVI_CAREER_FIELD_ID", cfg.Schema.CareerFieldID)
	cfg.Schema.HobbyFieldID = envInt("KAONAVI_HOBBY_FIELD_ID", cfg.Schema.HobbyFieldID)
	cfg.Schema.SpecialtyFieldID = envInt("KAONAVI_SPECIALTY_FIELD_ID", cfg.Schema.SpecialtyFieldID)
	cfg.Schema.StrengthsFieldID = envInt("KAONAVI_STRENGTHS_FIELD_ID", cfg.Schema.StrengthsFieldID)
	cfg.Schema.MessageFieldID = envInt("KAONAVI_MESSAGE_FIELD_ID", cfg.Schema.MessageFieldID)
	cfg.Schema.RoleFieldName = envString("KAONAVI_ROLE_FIELD_NAME", cfg.Schema.RoleFieldName)
	cfg.Schema.RecruitCategoryFieldName = envString("KAONAVI_RECRUIT_CATEGORY_FIELD_NAME", cfg.Schema.RecruitCategoryFieldName)

	return cfg
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
