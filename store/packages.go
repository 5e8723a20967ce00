package store

import (
	"errors"

	"album-service/apperrors"
	"album-service/models"

	"gorm.io/gorm"
)

// PackageCatalog reads and seeds the billing package catalog in Postgres.
type PackageCatalog struct {
	db *gorm.DB
}

func NewPackageCatalog(db *gorm.DB) (*PackageCatalog, error) {
	if err := db.AutoMigrate(&models.Package{}); err != nil {
		return nil, err
	}
	return &PackageCatalog{db: db}, nil
}

func (c *PackageCatalog) List() ([]models.Package, error) {
	packages := []models.Package{}
	if err := c.db.Order("price desc").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *PackageCatalog) FindByID(id uint) (*models.Package, error) {
	pkg := models.Package{}
	err := c.db.First(&pkg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// SeedDefaults inserts the stock tiers when the table is empty.
func (c *PackageCatalog) SeedDefaults() error {
	var count int64
	if err := c.db.Model(&models.Package{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Package{
		{
			Name:                  "Hauptpaket",
			Price:                 59.99,
			Description:           "Unser vollständiges Eventpaket mit allen Features",
			IsMainPackage:         true,
			PhotoLimit:            -1,
			VideoLimit:            -1,
			AlbumCount:            3,
			StorageDurationMonths: 6,
			FullAlbumDownloads:    3,
			GuestLimit:            -1,
			LikeFunction:          true,
			CommentFunction:       true,
			PhotoChallenges:       true,
			FullQualityImages:     true,
		},
		{
			Name:                  "Kostenlos",
			Price:                 0,
			Description:           "Unser kostenloses Paket zum Testen",
			IsMainPackage:         false,
			PhotoLimit:            10,
			VideoLimit:            1,
			AlbumCount:            1,
			StorageDurationMonths: 1,
			FullAlbumDownloads:    0,
			GuestLimit:            10,
		},
	}
	return c.db.Create(&defaults).Error
}
