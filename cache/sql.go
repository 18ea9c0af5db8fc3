package cache

import (
	"context"

	"snaptikbot/database"
)

// SQL is backed by the videos table of the database package.
type SQL struct{}

func NewSQL() *SQL {
	return &SQL{}
}

func (*SQL) Lookup(ctx context.Context, url string) (string, bool, error) {
	fileID, err := database.GetVideoFileID(ctx, url)
	if err != nil {
		return "", false, err
	}
	if !fileID.Valid || fileID.String == "" {
		return "", false, nil
	}
	return fileID.String, true, nil
}

func (*SQL) Remember(ctx context.Context, url string, fileID string) error {
	return database.InsertVideoFileID(ctx, url, fileID)
}
