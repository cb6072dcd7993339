package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret              string
	SupabaseProjectURL     string
	SupabaseServiceRoleKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SupabaseProjectURL = strings.TrimRight(GetEnv("SUPABASE_PROJECT_URL"), "/")
	SupabaseServiceRoleKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	if SupabaseProjectURL == "" {
		log.Println("❌ SUPABASE_PROJECT_URL belum diset!")
	}
	if SupabaseServiceRoleKey == "" {
		log.Println("❌ SUPABASE_SERVICE_ROLE_KEY belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
