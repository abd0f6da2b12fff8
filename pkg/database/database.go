package database

import (
	"fmt"
	"log"
	"schoolscope_backend/internal/config"
	"schoolscope_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.District{},
		&model.School{},
		&model.SchoolContact{},
		&model.EnrollmentStat{},
		&model.StaffStat{},
		&model.SafetyStat{},
		&model.DistrictMeasurement{},
		&model.StateMeasurement{},
		&model.SchoolMeasurement{},
		&model.Survey{},
		&model.SurveyQuestion{},
		&model.SurveyQuestionOption{},
		&model.SurveyResponse{},
		&model.SurveyAnswer{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Bootstrap admin account so a fresh install is reachable.
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme-admin"), bcrypt.DefaultCost)
		if err == nil {
			db.Create(&model.User{
				Name:     "Administrator",
				Email:    "admin@schoolscope.local",
				Password: string(hashed),
				Role:     model.Admin,
			})
			log.Println("Seeded default admin account (admin@schoolscope.local)")
		}
	}

	return db, nil
}
