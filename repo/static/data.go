package static

import (
	"time"

	"github.com/yunshare/resource_service/models/vo"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func uintPtr(u uint64) *uint64 { return &u }

func at(value string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", value)
	return t
}

// sampleResources 返回手工维护的示例数据集。
// - 记录是预先合并好的扁平视图（元数据字段已内联），因此静态路径的关键词匹配
//   可以覆盖 title，这一点与 live 路径不同。
// - 每次调用都构造新的切片，进程内只会构造一次（见 NewCatalog）。
func sampleResources() []*vo.ResourceVO {
	return []*vo.ResourceVO{
		{
			ID:          1,
			Name:        "肖申克的救赎",
			Alias:       "The Shawshank Redemption",
			Category1:   "影视资源",
			Category2:   "电影",
			DriveType:   "百度云",
			Link:        "https://pan.baidu.com/s/1234567890",
			IsExpired:   0,
			ViewCount:   1523,
			ShareCount:  234,
			Hot:         95,
			Size:        "2.5GB",
			MetadataID:  uintPtr(1),
			CreatedAt:   at("2024-01-15 10:30:00"),
			UpdatedAt:   at("2024-01-15 10:30:00"),
			Code:        strPtr("movie-001"),
			Title:       strPtr("肖申克的救赎"),
			Year:        intPtr(1994),
			Genre:       strPtr("剧情"),
			Description: strPtr("一个关于希望、自由和救赎的故事。银行家安迪被冤枉杀害妻子和她的情人，被判终身监禁，关押在肖申克监狱。"),
			PosterURL:   strPtr("https://image.tmdb.org/t/p/w500/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg"),
		},
		{
			ID:          2,
			Name:        "阿甘正传",
			Alias:       "Forrest Gump",
			Category1:   "影视资源",
			Category2:   "电影",
			DriveType:   "阿里云",
			Link:        "https://www.aliyundrive.com/s/abcdef1234",
			IsExpired:   0,
			ViewCount:   2341,
			ShareCount:  456,
			Hot:         88,
			Size:        "3.2GB",
			MetadataID:  uintPtr(2),
			CreatedAt:   at("2024-01-16 14:20:00"),
			UpdatedAt:   at("2024-01-16 14:20:00"),
			Code:        strPtr("movie-002"),
			Title:       strPtr("阿甘正传"),
			Year:        intPtr(1994),
			Genre:       strPtr("剧情/喜剧"),
			Description: strPtr("阿甘是一个智商只有75的低能儿，但他善良单纯，通过自己的努力创造了一个又一个奇迹。"),
			PosterURL:   strPtr("https://image.tmdb.org/t/p/w500/saHP97rTPS5eLwERh_sVru84Gbp.jpg"),
		},
		{
			ID:          3,
			Name:        "泰坦尼克号",
			Alias:       "Titanic",
			Category1:   "影视资源",
			Category2:   "电影",
			DriveType:   "腾讯云",
			Link:        "https://cloud.tencent.com/developer/article/12345",
			IsExpired:   0,
			ViewCount:   3421,
			ShareCount:  678,
			Hot:         92,
			Size:        "4.1GB",
			MetadataID:  uintPtr(3),
			CreatedAt:   at("2024-01-17 09:15:00"),
			UpdatedAt:   at("2024-01-17 09:15:00"),
			Code:        strPtr("movie-003"),
			Title:       strPtr("泰坦尼克号"),
			Year:        intPtr(1997),
			Genre:       strPtr("爱情/剧情"),
			Description: strPtr("1912年4月10日，泰坦尼克号开始了它的处女航。富家少女罗丝与画家杰克在船上相遇并坠入爱河。"),
			PosterURL:   strPtr("https://image.tmdb.org/t/p/w500/9xjZS2rlVxm8SFx8kPC3aIGCOYQ.jpg"),
		},
		{
			ID:          4,
			Name:        "权力的游戏 第一季",
			Alias:       "Game of Thrones Season 1",
			Category1:   "影视资源",
			Category2:   "电视剧",
			DriveType:   "百度云",
			Link:        "https://pan.baidu.com/s/9876543210",
			IsExpired:   0,
			ViewCount:   4532,
			ShareCount:  890,
			Hot:         97,
			Size:        "15.6GB",
			MetadataID:  uintPtr(4),
			CreatedAt:   at("2024-01-18 16:45:00"),
			UpdatedAt:   at("2024-01-18 16:45:00"),
			Code:        strPtr("tv-001"),
			Title:       strPtr("权力的游戏"),
			Year:        intPtr(2011),
			Genre:       strPtr("奇幻/剧情"),
			Description: strPtr("故事发生在一个虚构的世界，七大王国争夺铁王座的统治权。"),
			PosterURL:   strPtr("https://image.tmdb.org/t/p/w500/u3bZgnGQ9T01sWNGrF0gpkpSrfu.jpg"),
		},
		{
			ID:          5,
			Name:        "绝命毒师 第一季",
			Alias:       "Breaking Bad Season 1",
			Category1:   "影视资源",
			Category2:   "电视剧",
			DriveType:   "阿里云",
			Link:        "https://www.aliyundrive.com/s/fedcba0987",
			IsExpired:   0,
			ViewCount:   3214,
			ShareCount:  567,
			Hot:         89,
			Size:        "12.3GB",
			MetadataID:  uintPtr(5),
			CreatedAt:   at("2024-01-19 11:20:00"),
			UpdatedAt:   at("2024-01-19 11:20:00"),
			Code:        strPtr("tv-002"),
			Title:       strPtr("绝命毒师"),
			Year:        intPtr(2008),
			Genre:       strPtr("犯罪/剧情"),
			Description: strPtr("高中化学老师沃尔特·怀特被诊断出患有肺癌，为了给家人留下财产，他开始制造和销售冰毒。"),
			PosterURL:   strPtr("https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjuxplrQ.jpg"),
		},
	}
}
