package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	LookupDir     string
	InventoryDir  string
	PortfolioFile string
	TCGAPIURL     string
	TCGPageSize   int
	DatabaseURL   string
	ServerAddress string
}

var loadOnce sync.Once

func Load() Config {
	loadOnce.Do(func() {
		_ = godotenv.Load(".env.local")
	})
	return Config{
		LookupDir:     getenv("LOOKUP_DIR", "./card_set_lookup"),
		InventoryDir:  getenv("INVENTORY_DIR", "./card_inventory"),
		PortfolioFile: getenv("PORTFOLIO_FILE", "card_portfolio.csv"),
		TCGAPIURL:     getenv("TCG_API_URL", "https://api.pokemontcg.io/v2"),
		TCGPageSize:   getintenv("TCG_PAGE_SIZE", 250),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ServerAddress: getenv("SERVER_ADDRESS", ":8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getintenv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
