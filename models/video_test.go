package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestVideoSchema(t *testing.T) {
	videoSchema, err := schema.Parse(&Video{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "videos", videoSchema.Table)

	url := videoSchema.LookUpField("url")
	require.NotNil(t, url)
	assert.True(t, url.PrimaryKey)
	assert.Equal(t, 768, url.Size)

	require.NotNil(t, videoSchema.LookUpField("file_id"))
}
