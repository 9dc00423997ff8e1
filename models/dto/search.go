package dto

import "github.com/yunshare/resource_service/constant"

// validSortFields 允许参与排序的列。不在表内的输入一律回落到 hot。
var validSortFields = map[string]bool{
	"hot":        true,
	"view_count": true,
	"created_at": true,
	"name":       true,
}

// SearchRequest 定义了资源搜索的API请求参数。
// - 用于控制器层从 URL 查询参数绑定。
// - 与常规接口不同，非法的分页/排序参数不报 400，而是在 Normalize 中收敛到合法值，
//   保证搜索页在任何入参下都有结果返回。
type SearchRequest struct {
	// Keyword 关键词，对 name 和 alias 做不区分大小写的子串匹配。
	Keyword string `form:"keyword"`

	// Category1 一级分类等值过滤。
	Category1 string `form:"category1"`

	// Category2 二级分类等值过滤。
	Category2 string `form:"category2"`

	// DriveType 网盘类型等值过滤。
	DriveType string `form:"drive_type"`

	// Page 页码，从 1 开始；小于 1 的输入收敛为 1。
	Page int `form:"page"`

	// Limit 每页数量，收敛到 [1, 100]；缺省 20。
	Limit int `form:"limit"`

	// Sort 排序字段，允许 hot / view_count / created_at / name；其余回落到 hot。
	Sort string `form:"sort"`

	// Order 排序方向，ASC 或 DESC；其余输入一律按 DESC 处理。
	Order string `form:"order"`
}

// Normalize 把请求参数收敛到合法取值范围。
// - 幂等，Service 层在进入任何查询路径之前调用。
func (r *SearchRequest) Normalize() {
	if r.Page < constant.DefaultPage {
		r.Page = constant.DefaultPage
	}
	if r.Limit <= 0 {
		r.Limit = constant.DefaultPageLimit
	}
	if r.Limit > constant.MaxPageLimit {
		r.Limit = constant.MaxPageLimit
	}
	if !validSortFields[r.Sort] {
		r.Sort = constant.DefaultSortField
	}
	if r.Order != "ASC" && r.Order != "DESC" {
		r.Order = constant.DefaultSortOrder
	}
}

// Offset 计算分页偏移量。
// - (page - 1) * limit，Normalize 之后恒为非负。
func (r *SearchRequest) Offset() int {
	if r.Page <= 0 {
		return 0
	}
	return (r.Page - 1) * r.Limit
}
