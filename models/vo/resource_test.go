package vo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunshare/resource_service/models/entities"
)

func TestNewResourceVO_WithMeta(t *testing.T) {
	metaID := uint64(7)
	year := 1994
	genre := "剧情"
	sharedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	resource := &entities.Resource{
		ID:           42,
		Name:         "肖申克的救赎",
		Alias:        "The Shawshank Redemption",
		Category1:    "影视资源",
		Category2:    "电影",
		DriveType:    "百度云",
		Link:         "https://pan.baidu.com/s/xxx",
		ViewCount:    100,
		ShareCount:   10,
		Hot:          95,
		Size:         "2.5GB",
		MetadataID:   &metaID,
		LastSharedAt: &sharedAt,
	}
	meta := &entities.ResourceMeta{
		ID:    7,
		Code:  "movie-001",
		Title: "肖申克的救赎",
		Year:  &year,
		Genre: &genre,
	}

	view := NewResourceVO(resource, meta)

	assert.Equal(t, uint64(42), view.ID)
	assert.Equal(t, "肖申克的救赎", view.Name)
	require.NotNil(t, view.Code)
	assert.Equal(t, "movie-001", *view.Code)
	require.NotNil(t, view.Title)
	assert.Equal(t, "肖申克的救赎", *view.Title)
	require.NotNil(t, view.Year)
	assert.Equal(t, 1994, *view.Year)
	// Description 在元数据里就是 nil，投影后保持 nil 而不是空串
	assert.Nil(t, view.Description)
	require.NotNil(t, view.LastShared)
	assert.True(t, sharedAt.Equal(*view.LastShared))
}

func TestNewResourceVO_WithoutMeta(t *testing.T) {
	resource := &entities.Resource{
		ID:   9,
		Name: "无元数据资源",
	}

	view := NewResourceVO(resource, nil)

	// 无元数据时全部投影字段保持 nil，序列化后为 null 而非 ""
	assert.Nil(t, view.Code)
	assert.Nil(t, view.Title)
	assert.Nil(t, view.Year)
	assert.Nil(t, view.Genre)
	assert.Nil(t, view.Description)
	assert.Nil(t, view.PosterURL)
	assert.Nil(t, view.MetadataID)
	assert.Equal(t, "无元数据资源", view.Name)
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		limit    int
		expected int64
	}{
		{"整除", 100, 20, 5},
		{"有余数向上取整", 101, 20, 6},
		{"不足一页算一页", 5, 20, 1},
		{"零条记录零页", 0, 20, 0},
		{"非法 limit 返回 0", 10, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalPages(tc.total, tc.limit))
		})
	}
}
