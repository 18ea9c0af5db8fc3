package database

import (
	"context"
	"fmt"

	"snaptikbot/models"

	"github.com/guregu/null/v6"
	"gorm.io/gorm/clause"
)

// GetVideoFileID returns a null string on a miss.
func GetVideoFileID(
	ctx context.Context,
	url string,
) (null.String, error) {
	var video models.Video
	result := DB.
		WithContext(ctx).
		Select("file_id").
		Where("url = ?", url).
		Limit(1).
		Find(&video)
	if result.Error != nil {
		return null.String{}, fmt.Errorf("failed to get video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return null.String{}, nil
	}
	return video.FileID, nil
}

// InsertVideoFileID keeps the first file id stored for url,
// a concurrent duplicate insert is a no-op.
func InsertVideoFileID(
	ctx context.Context,
	url string,
	fileID string,
) error {
	err := DB.
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Video{
			URL:    url,
			FileID: null.StringFrom(fileID),
		}).
		Error
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}
