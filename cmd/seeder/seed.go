package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yunshare/resource_service/models/entities"
	"github.com/yunshare/resource_service/pkg/core"
)

var (
	category1Pool = []string{"影视资源", "学习资料", "软件工具", "电子书"}
	category2Pool = []string{"电影", "电视剧", "动漫", "纪录片", "综艺", "课程", "工具"}
	driveTypePool = []string{"百度云", "阿里云", "腾讯云", "夸克网盘"}
	genrePool     = []string{"剧情", "剧情/犯罪", "科幻/冒险", "悬疑/惊悚", "喜剧/家庭", "动作/战争"}
)

// canonicalSeeds 是降级目录里那五条资源的数据库版本，
// 保证开发环境下实时查询和降级查询能对得上号。
type canonicalSeed struct {
	name      string
	alias     string
	category1 string
	category2 string
	driveType string
	hot       int64
	viewCount int64
	code      string
	title     string
	year      int
	genre     string
}

var canonicalSeeds = []canonicalSeed{
	{"肖申克的救赎", "The Shawshank Redemption", "影视资源", "电影", "百度云", 95, 1523, "movie-001", "肖申克的救赎", 1994, "剧情"},
	{"阿甘正传", "Forrest Gump", "影视资源", "电影", "阿里云", 88, 2341, "movie-002", "阿甘正传", 1994, "剧情/喜剧"},
	{"泰坦尼克号", "Titanic", "影视资源", "电影", "腾讯云", 92, 3421, "movie-003", "泰坦尼克号", 1997, "爱情/剧情"},
	{"权力的游戏 第一季", "Game of Thrones Season 1", "影视资源", "电视剧", "百度云", 97, 4532, "tv-001", "权力的游戏", 2011, "奇幻/剧情"},
	{"绝命毒师 第一季", "Breaking Bad Season 1", "影视资源", "电视剧", "阿里云", 89, 3214, "tv-002", "绝命毒师", 2008, "犯罪/剧情"},
}

// Seed 向数据库写入固定样例资源和 numRandom 条随机资源。
// 随机资源中约三分之一不带元数据，用来覆盖 LEFT JOIN 下元数据缺失的展示路径。
func Seed(ctx context.Context, db *gorm.DB, logger *core.ZapLogger, numRandom int) {
	logger.Info("开始填充资源目录数据", zap.Int("randomCount", numRandom))
	start := time.Now()

	created := 0
	for _, s := range canonicalSeeds {
		if err := seedCanonical(ctx, db, s); err != nil {
			logger.Error("写入固定样例资源失败", zap.String("name", s.name), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("固定样例资源写入完成", zap.Int("count", created))

	created = 0
	for i := 0; i < numRandom; i++ {
		if err := seedRandom(ctx, db); err != nil {
			logger.Error("写入随机资源失败", zap.Int("index", i), zap.Error(err))
			continue
		}
		created++
	}

	logger.Info("资源目录数据填充完成",
		zap.Int("randomCreated", created),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func seedCanonical(ctx context.Context, db *gorm.DB, s canonicalSeed) error {
	// 按名称去重，重复执行 seeder 不会堆出重复样例
	var existing int64
	if err := db.WithContext(ctx).Model(&entities.Resource{}).
		Where("name = ?", s.name).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := s.year
		genre := s.genre
		desc := gofakeit.Paragraph(1, 3, 12, " ")
		poster := fmt.Sprintf("https://img.yunshare.example/posters/%s.jpg", s.code)
		meta := entities.ResourceMeta{
			Code:        s.code,
			Title:       s.title,
			Year:        &year,
			Genre:       &genre,
			Description: &desc,
			PosterURL:   &poster,
		}
		if err := tx.Create(&meta).Error; err != nil {
			return err
		}

		sharedAt := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
		resource := entities.Resource{
			Name:         s.name,
			Alias:        s.alias,
			Category1:    s.category1,
			Category2:    s.category2,
			DriveType:    s.driveType,
			Link:         fmt.Sprintf("https://pan.example.com/s/%s", gofakeit.LetterN(8)),
			IsExpired:    0,
			ViewCount:    s.viewCount,
			ShareCount:   s.viewCount / 10,
			Hot:          s.hot,
			Size:         fmt.Sprintf("%.1fGB", gofakeit.Float64Range(1.0, 60.0)),
			MetadataID:   &meta.ID,
			LastSharedAt: &sharedAt,
		}
		return tx.Create(&resource).Error
	})
}

func seedRandom(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var metaID *uint64

		// 约 2/3 的资源带元数据
		if gofakeit.Number(0, 2) > 0 {
			year := gofakeit.Number(1980, 2025)
			genre := gofakeit.RandomString(genrePool)
			desc := gofakeit.Paragraph(1, 2, 10, " ")
			poster := gofakeit.URL()
			meta := entities.ResourceMeta{
				Code:        fmt.Sprintf("tt%07d", gofakeit.Number(1000000, 9999999)),
				Title:       gofakeit.MovieName(),
				Year:        &year,
				Genre:       &genre,
				Description: &desc,
				PosterURL:   &poster,
			}
			if err := tx.Create(&meta).Error; err != nil {
				return err
			}
			metaID = &meta.ID
		}

		name := gofakeit.MovieName()
		expired := 0
		if gofakeit.Number(0, 9) == 0 {
			expired = 1 // 约一成过期资源，验证查询过滤
		}
		viewCount := int64(gofakeit.Number(0, 200000))
		sharedAt := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		resource := entities.Resource{
			Name:         name,
			Alias:        strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			Category1:    gofakeit.RandomString(category1Pool),
			Category2:    gofakeit.RandomString(category2Pool),
			DriveType:    gofakeit.RandomString(driveTypePool),
			Link:         fmt.Sprintf("https://pan.example.com/s/%s", gofakeit.LetterN(8)),
			IsExpired:    expired,
			ViewCount:    viewCount,
			ShareCount:   int64(gofakeit.Number(0, 5000)),
			Hot:          int64(gofakeit.Number(0, 10000)),
			Size:         fmt.Sprintf("%.1fGB", gofakeit.Float64Range(0.5, 80.0)),
			MetadataID:   metaID,
			LastSharedAt: &sharedAt,
		}
		return tx.Create(&resource).Error
	})
}
