package infra

import (
	"fmt"

	"pricewatch/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create/update all tables and seeds the fixed competitor population.
// TranslateError is enabled so unique-key violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema and seed data. Also used by the
// integration test suite against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Competitor{},
		&model.Price{},
		&model.PriceHistory{},
		&model.Client{},
		&model.SKU{},
		&model.Evidence{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return SeedCompetitors(db)
}

// SeedCompetitors inserts the fixed set of four competitors. Idempotent:
// rows already present (matched by code) are left untouched. Insert order
// matters — it fixes the column order of the comparison matrix.
func SeedCompetitors(db *gorm.DB) error {
	seed := []model.Competitor{
		{Name: "Dinho", Code: "DINHO"},
		{Name: "Adega Brasil", Code: "ADEGA_BRASIL"},
		{Name: "Franco", Code: "FRANCO"},
		{Name: "Diversos", Code: "DIVERSOS"},
	}
	for _, c := range seed {
		res := db.Exec(
			`INSERT INTO competitors (name, code, created_at) VALUES (?, ?, NOW())
			 ON CONFLICT (code) DO NOTHING`,
			c.Name, c.Code,
		)
		if res.Error != nil {
			return fmt.Errorf("seed competitor %s: %w", c.Code, res.Error)
		}
	}
	return nil
}
