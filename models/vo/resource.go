package vo

import (
	"time"

	"github.com/yunshare/resource_service/models/entities"
)

// ResourceVO 定义了资源的响应数据结构。
// - 是 Resource 与其关联 ResourceMeta 的扁平合并视图，按响应即时构造，不做跨请求缓存。
// - 元数据投影字段使用指针：nil 表示该资源没有关联元数据，与空字符串是两种不同的含义，
//   序列化后分别为 null 和 ""，调用方需区别对待。
type ResourceVO struct {
	ID         uint64     `json:"id"`             // 资源ID
	Name       string     `json:"name"`           // 资源名称
	Alias      string     `json:"alias"`          // 别名
	Category1  string     `json:"category1"`      // 一级分类
	Category2  string     `json:"category2"`      // 二级分类
	DriveType  string     `json:"drive_type"`     // 网盘类型
	Link       string     `json:"link"`           // 分享链接
	IsExpired  int        `json:"is_expired"`     // 失效标记，0=有效 1=失效
	ViewCount  int64      `json:"view_count"`     // 浏览量
	ShareCount int64      `json:"share_count"`    // 分享次数
	Hot        int64      `json:"hot"`            // 热度分
	Size       string     `json:"size"`           // 资源大小（自由文本）
	MetadataID *uint64    `json:"metadata_id"`    // 关联元数据ID，可能为 null
	LastShared *time.Time `json:"last_shared_at"` // 最近分享时间，可能为 null
	CreatedAt  time.Time  `json:"created_at"`     // 创建时间
	UpdatedAt  time.Time  `json:"updated_at"`     // 更新时间

	// 以下字段来自关联的 ResourceMeta，资源无元数据时为 null
	Code        *string `json:"code"`        // 编目编号
	Title       *string `json:"title"`       // 标准化标题
	Year        *int    `json:"year"`        // 发行年份
	Genre       *string `json:"genre"`       // 题材
	Description *string `json:"description"` // 简介
	PosterURL   *string `json:"poster_url"`  // 海报地址
}

// SearchResultVO 分页搜索的响应结构。
type SearchResultVO struct {
	Items      []*ResourceVO `json:"items"`       // 当前页资源列表
	Total      int64         `json:"total"`       // 过滤后、分页前的总条数
	Page       int           `json:"page"`        // 页码
	Limit      int           `json:"limit"`       // 每页数量
	TotalPages int64         `json:"total_pages"` // 总页数 = ceil(total/limit)
}

// CategoryStatVO 一级分类的数量统计。
type CategoryStatVO struct {
	Category1 string `json:"category1"` // 一级分类
	Count     int64  `json:"count"`     // 非失效资源数量
}

// NewResourceVO 把资源实体与其可能为 nil 的元数据合并为扁平视图。
// - 纯函数：meta 为 nil 时投影字段保持 nil，不做空值填充。
func NewResourceVO(resource *entities.Resource, meta *entities.ResourceMeta) *ResourceVO {
	view := &ResourceVO{
		ID:         resource.ID,
		Name:       resource.Name,
		Alias:      resource.Alias,
		Category1:  resource.Category1,
		Category2:  resource.Category2,
		DriveType:  resource.DriveType,
		Link:       resource.Link,
		IsExpired:  resource.IsExpired,
		ViewCount:  resource.ViewCount,
		ShareCount: resource.ShareCount,
		Hot:        resource.Hot,
		Size:       resource.Size,
		MetadataID: resource.MetadataID,
		LastShared: resource.LastSharedAt,
		CreatedAt:  resource.CreatedAt,
		UpdatedAt:  resource.UpdatedAt,
	}

	if meta != nil {
		code := meta.Code
		title := meta.Title
		view.Code = &code
		view.Title = &title
		view.Year = meta.Year
		view.Genre = meta.Genre
		view.Description = meta.Description
		view.PosterURL = meta.PosterURL
	}
	return view
}

// TotalPages 按 ceil(total/limit) 计算总页数。
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
