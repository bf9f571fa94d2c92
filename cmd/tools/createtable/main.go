// createtable creates the session table used when SESSION_STORE=db.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const ddl = `
CREATE TABLE IF NOT EXISTS storefront_sessions (
  id CHAR(36) NOT NULL,
  token TEXT NOT NULL,
  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (id),
  KEY ix_storefront_sessions_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Exec(ddl).Error; err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	log.Println("✓ storefront_sessions table ready")
}
