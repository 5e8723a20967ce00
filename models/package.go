package models

// Package is a purchasable feature tier. The catalog lives in Postgres and
// is referenced from accounts by numeric id. A limit of -1 means unlimited.
type Package struct {
	ID                    uint    `json:"id" gorm:"primaryKey"`
	Name                  string  `json:"name" gorm:"column:name"`
	Price                 float64 `json:"price" gorm:"column:price"`
	Description           string  `json:"description" gorm:"column:description"`
	IsMainPackage         bool    `json:"isMainPackage" gorm:"column:is_main_package"`
	PhotoLimit            int     `json:"photoLimit" gorm:"column:photo_limit"`
	VideoLimit            int     `json:"videoLimit" gorm:"column:video_limit"`
	AlbumCount            int     `json:"albumCount" gorm:"column:album_count"`
	StorageDurationMonths int     `json:"storageDuration" gorm:"column:storage_duration_months"`
	FullAlbumDownloads    int     `json:"fullAlbumDownloads" gorm:"column:full_album_downloads"`
	GuestLimit            int     `json:"guestLimit" gorm:"column:guest_limit"`
	LikeFunction          bool    `json:"likeFunction" gorm:"column:like_function"`
	CommentFunction       bool    `json:"commentFunction" gorm:"column:comment_function"`
	PhotoChallenges       bool    `json:"photoChallenges" gorm:"column:photo_challenges"`
	FullQualityImages     bool    `json:"fullQualityImages" gorm:"column:full_quality_images"`
}

// TableName overrides the default table name used by GORM
func (Package) TableName() string {
	return "packages"
}
