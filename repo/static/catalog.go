package static

import (
	"sort"
	"strings"

	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/models/vo"
)

// Catalog 是存储不可达时使用的进程内静态数据目录。
// - 数据集在构造时固定，进程生命周期内不增删记录。
// - 过滤语义与 live 路径对齐，两处有意的差异：
//   1. 关键词匹配额外覆盖 title（静态记录是预合并的扁平视图）；
//   2. 搜索结果只按 hot 降序，入参中的 sort/order 被接受但忽略。
// - 浏览量自增直接改共享条目，并发下数值可能偏差；目录数据本就随进程消失，
//   不为它引入锁。
type Catalog struct {
	resources []*vo.ResourceVO
}

// NewCatalog 构建静态目录。
func NewCatalog() *Catalog {
	return &Catalog{resources: sampleResources()}
}

// Size 返回目录条目数，健康检查展示用。
func (c *Catalog) Size() int {
	return len(c.resources)
}

// matches 判断单条记录是否命中搜索条件。
func matches(r *vo.ResourceVO, req *dto.SearchRequest) bool {
	if r.IsExpired != 0 {
		return false
	}
	if req.Keyword != "" {
		keyword := strings.ToLower(req.Keyword)
		hit := strings.Contains(strings.ToLower(r.Name), keyword) ||
			strings.Contains(strings.ToLower(r.Alias), keyword)
		if !hit && r.Title != nil {
			hit = strings.Contains(strings.ToLower(*r.Title), keyword)
		}
		if !hit {
			return false
		}
	}
	if req.Category1 != "" && r.Category1 != req.Category1 {
		return false
	}
	if req.Category2 != "" && r.Category2 != req.Category2 {
		return false
	}
	if req.DriveType != "" && r.DriveType != req.DriveType {
		return false
	}
	return true
}

// Search 在静态数据集上执行与 live 路径等价的过滤分页查询。
// - req 必须已经过 Normalize。
func (c *Catalog) Search(req *dto.SearchRequest) *vo.SearchResultVO {
	filtered := make([]*vo.ResourceVO, 0, len(c.resources))
	for _, r := range c.resources {
		if matches(r, req) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Hot > filtered[j].Hot
	})

	total := int64(len(filtered))
	start := req.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + req.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &vo.SearchResultVO{
		Items:      filtered[start:end],
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: vo.TotalPages(total, req.Limit),
	}
}

// GetByID 按 ID 查找非失效记录，未命中返回 nil。
func (c *Catalog) GetByID(id uint64) *vo.ResourceVO {
	for _, r := range c.resources {
		if r.ID == id && r.IsExpired == 0 {
			return r
		}
	}
	return nil
}

// IncrementView 对目录内记录的浏览量 +1。
// - 仅进程内生效；见类型注释中关于竞态的说明。
func (c *Catalog) IncrementView(id uint64) {
	if r := c.GetByID(id); r != nil {
		r.ViewCount++
	}
}

// ListHot 返回热度排行，hot 降序、view_count 降序兜底。
func (c *Catalog) ListHot(limit int) []*vo.ResourceVO {
	ranked := make([]*vo.ResourceVO, 0, len(c.resources))
	for _, r := range c.resources {
		if r.IsExpired == 0 {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Hot != ranked[j].Hot {
			return ranked[i].Hot > ranked[j].Hot
		}
		return ranked[i].ViewCount > ranked[j].ViewCount
	})
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// ListRelated 返回与给定分类相关的记录。
// - 相关性是跨两个分类维度的“或”：category1 相同或 category2 相同即命中；
//   空串的维度不参与匹配。排除 excludeID 自身。
func (c *Catalog) ListRelated(excludeID uint64, category1, category2 string, limit int) []*vo.ResourceVO {
	if category1 == "" && category2 == "" {
		return []*vo.ResourceVO{}
	}

	related := make([]*vo.ResourceVO, 0, len(c.resources))
	for _, r := range c.resources {
		if r.ID == excludeID || r.IsExpired != 0 {
			continue
		}
		if (category1 != "" && r.Category1 == category1) ||
			(category2 != "" && r.Category2 == category2) {
			related = append(related, r)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		if related[i].Hot != related[j].Hot {
			return related[i].Hot > related[j].Hot
		}
		return related[i].ViewCount > related[j].ViewCount
	})
	if limit < len(related) {
		related = related[:limit]
	}
	return related
}

// Category1Values 返回全部非失效记录的一级分类列，频次统计在服务层完成。
func (c *Catalog) Category1Values() []string {
	values := make([]string, 0, len(c.resources))
	for _, r := range c.resources {
		if r.IsExpired == 0 {
			values = append(values, r.Category1)
		}
	}
	return values
}
