package seed

import (
	"testing"

	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/db"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestSeedIsIdempotent(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.SeedConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "s3cret"}
	for i := 0; i < 2; i++ {
		if err := Seed(gdb, cfg, logger.Nop()); err != nil {
			t.Fatalf("Seed run %d: %v", i+1, err)
		}
	}

	var users []models.UserModel
	if err := gdb.Find(&users).Error; err != nil {
		t.Fatalf("find users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "admin" {
		t.Fatalf("users = %+v", users)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("s3cret")); err != nil {
		t.Fatalf("password not hashed with bcrypt: %v", err)
	}

	var units int64
	if err := gdb.Model(&models.UnitModel{}).Count(&units).Error; err != nil {
		t.Fatalf("count units: %v", err)
	}
	if units != int64(len(baseUnits)) {
		t.Fatalf("units = %d, want %d", units, len(baseUnits))
	}
}
