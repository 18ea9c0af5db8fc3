package models

import "github.com/guregu/null/v6"

// Video maps a normalized content URL to the file id
// telegram assigned to the uploaded video.
// 768 characters is the longest utf8mb4 primary key mysql can index.
type Video struct {
	URL    string      `gorm:"column:url;primaryKey;size:768" json:"url"`
	FileID null.String `gorm:"column:file_id" json:"file_id"`
}

func (Video) TableName() string {
	return "videos"
}
