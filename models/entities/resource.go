package entities

import "time"

// Resource 云盘分享资源实体
// - 使用场景: 搜索列表页与详情页的主记录，存储资源名称、分类、网盘类型、分享链接和各类计数
// - 表名: resources (GORM 默认使用结构体名复数形式)
// - 生命周期: 记录由外部采集/录入流程创建和维护，本服务只读，唯一的写入是浏览量自增
type Resource struct {
	// 主键，由录入方保证稳定
	ID uint64 `gorm:"primaryKey"`

	// 资源名称（如剧名），关键词搜索的主字段
	Name string `gorm:"type:varchar(255);not null;index"`

	// 别名（常为外文原名），关键词搜索的次字段
	Alias string `gorm:"type:varchar(255);not null"`

	// 一级分类（如“影视资源”）
	Category1 string `gorm:"type:varchar(50);not null;index"`

	// 二级分类（如“电影”“电视剧”），与一级分类相互独立
	Category2 string `gorm:"type:varchar(50);not null;index"`

	// 网盘类型（如“百度云”“阿里云”）
	DriveType string `gorm:"type:varchar(50);not null"`

	// 分享链接
	Link string `gorm:"type:varchar(512);not null"`

	// 失效标记，0=有效 1=已失效
	// - 录入方维护；所有读取路径都排除已失效记录
	// - 沿用来源数据的整型布尔表示，不改为 bool
	IsExpired int `gorm:"type:tinyint;not null;default:0;index"`

	// 浏览量，详情页访问时自增，只增不减
	ViewCount int64 `gorm:"type:bigint;not null;default:0"`

	// 分享次数，只增不减
	ShareCount int64 `gorm:"type:bigint;not null;default:0"`

	// 热度分，录入侧预计算的人气值，与浏览/分享计数相互独立，是默认排序键
	Hot int64 `gorm:"type:bigint;not null;default:0;index"`

	// 资源大小，自由文本（如“2.5GB”）
	Size string `gorm:"type:varchar(50)"`

	// 关联的元数据 ID，可为空
	// - 弱引用：只做关联查询，不拥有 ResourceMeta 的生命周期
	MetadataID *uint64 `gorm:"type:bigint;index"`

	// 最近一次被分享的时间，可为空
	LastSharedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
