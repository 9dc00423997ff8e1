package entities

import "time"

// ResourceMeta 资源元数据实体
// - 使用场景: 详情与列表展示用的描述性信息（标题、年份、题材、海报等）
// - 表名: resource_metas
// - 关系: 与 Resource 最多一对一；Resource 通过 MetadataID 弱引用本表，本表独立维护
type ResourceMeta struct {
	ID uint64 `gorm:"primaryKey"`

	// 外部编目编号（如 movie-001）
	Code string `gorm:"type:varchar(50);not null"`

	// 标准化标题
	Title string `gorm:"type:varchar(255);not null"`

	// 发行年份，可为空
	Year *int `gorm:"type:int"`

	// 题材（如“剧情/喜剧”），可为空
	Genre *string `gorm:"type:varchar(100)"`

	// 简介，可为空
	Description *string `gorm:"type:text"`

	// 海报图片地址，可为空
	PosterURL *string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
