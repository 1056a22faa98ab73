package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// openDialector picks MySQL when a DSN is configured and falls back to a
// local sqlite file otherwise, which is how the system originally stored
// its data.
func openDialector() (gorm.Dialector, error) {
	raw := utils.EnvOrDefault("MYSQL_URL", utils.EnvOrDefault("DATABASE_URL", ""))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			dsn, err := mysqlDSNFromURL(raw)
			if err != nil {
				return nil, err
			}
			return mysql.Open(dsn), nil
		}
		return mysql.Open(raw), nil
	}

	path := utils.EnvOrDefault("SQLITE_PATH", "./hotel.db")
	return sqlite.Open(path), nil
}

func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// One long-lived pooled handle for the whole process; requests borrow
	// connections from it instead of opening their own.
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return err
	}

	DB = db
	SeedRooms()
	return nil
}

// SeedRooms inserts a starter room set on an empty database so the room
// selection page has something to show out of the box.
func SeedRooms() {
	var count int64
	DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		return
	}

	rooms := []models.Room{
		{Name: "101", BedSize: "Queen"},
		{Name: "102", BedSize: "King"},
		{Name: "201", BedSize: "Twin"},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Warn().Err(err).Msg("failed to seed rooms")
		return
	}
	log.Info().Int("count", len(rooms)).Msg("rooms seeded")
}
