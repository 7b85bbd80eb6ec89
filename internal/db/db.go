package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/chatlog"
)

// Connect opens the MySQL connection and migrates the schema.
// Startup failures are fatal; nothing works without the store.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gdb.AutoMigrate(&catalog.Product{}, &chatlog.Interaction{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	return gdb
}
