package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/yunshare/resource_service/constant"
	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/models/vo"
	"github.com/yunshare/resource_service/myErrors"
	"github.com/yunshare/resource_service/pkg/core"
	"github.com/yunshare/resource_service/repo/mysql"
	"github.com/yunshare/resource_service/repo/static"
)

// ResourceQueryService 定义了资源查询引擎的业务接口。
// - 可用性优先：除 GetResourceByID/GetRelatedResources 的未找到（ErrResourceNotFound）外，
//   任何存储故障都在内部转为静态目录回退或空结果，不向调用方抛错。
type ResourceQueryService interface {
	// Search 按条件搜索资源（过滤 + 排序 + 分页）。
	Search(ctx context.Context, req *dto.SearchRequest) (*vo.SearchResultVO, error)

	// GetHotResources 获取热门资源，hot 降序、view_count 降序兜底。
	// - limit 小于等于 0 时使用默认值。
	GetHotResources(ctx context.Context, limit int) ([]*vo.ResourceVO, error)

	// GetResourceByID 获取资源详情。
	// - 命中后触发浏览量 +1（尽力而为，失败不影响本次返回）。
	// - 不存在与已失效统一返回 myErrors.ErrResourceNotFound。
	GetResourceByID(ctx context.Context, id uint64) (*vo.ResourceVO, error)

	// GetRelatedResources 获取相关推荐：与源资源 category1 或 category2 任一相同者，
	// 按 hot 降序、view_count 降序排列。源资源不存在时返回空列表而非错误。
	GetRelatedResources(ctx context.Context, id uint64, limit int) ([]*vo.ResourceVO, error)

	// GetCategoryStats 统计非失效资源的一级分类频次，按数量降序取前若干名。
	GetCategoryStats(ctx context.Context) ([]*vo.CategoryStatVO, error)
}

// resourceQueryService 是 ResourceQueryService 的具体实现。
// - 每个公开操作先问 StoreGate；降级则整个调用走静态目录。
// - live 路径中途失败时仅本次调用回退到静态目录，不改全局状态——全局降级只能
//   由探针自己触发。
type resourceQueryService struct {
	gate    *StoreGate
	repo    mysql.ResourceRepository
	catalog *static.Catalog
	logger  *core.ZapLogger
}

// NewResourceQueryService 创建查询引擎实例。
// - repo 允许为 nil（存储未配置），此时 gate 恒为降级，repo 不会被触达。
func NewResourceQueryService(
	gate *StoreGate,
	repo mysql.ResourceRepository,
	catalog *static.Catalog,
	logger *core.ZapLogger,
) ResourceQueryService {
	return &resourceQueryService{
		gate:    gate,
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Search 实现搜索操作。
func (s *resourceQueryService) Search(ctx context.Context, req *dto.SearchRequest) (*vo.SearchResultVO, error) {
	req.Normalize()

	if !s.gate.Available(ctx) {
		return s.catalog.Search(req), nil
	}

	rows, total, err := s.repo.Search(ctx, req)
	if err != nil {
		s.logger.Warn("live 搜索失败，本次调用回退到静态目录", zap.Error(err), zap.Any("req", req))
		return s.catalog.Search(req), nil
	}

	return &vo.SearchResultVO{
		Items:      mapRowsToVO(rows),
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: vo.TotalPages(total, req.Limit),
	}, nil
}

// GetHotResources 实现热门资源查询。
func (s *resourceQueryService) GetHotResources(ctx context.Context, limit int) ([]*vo.ResourceVO, error) {
	if limit <= 0 {
		limit = constant.DefaultHotLimit
	}

	if !s.gate.Available(ctx) {
		return s.catalog.ListHot(limit), nil
	}

	rows, err := s.repo.ListHot(ctx, limit)
	if err != nil {
		s.logger.Warn("live 热门查询失败，本次调用回退到静态目录", zap.Error(err), zap.Int("limit", limit))
		return s.catalog.ListHot(limit), nil
	}
	return mapRowsToVO(rows), nil
}

// GetResourceByID 实现详情查询与浏览量副作用。
func (s *resourceQueryService) GetResourceByID(ctx context.Context, id uint64) (*vo.ResourceVO, error) {
	if !s.gate.Available(ctx) {
		return s.catalogDetail(id)
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		// 未找到是一等返回值，不触发回退
		if errors.Is(err, myErrors.ErrResourceNotFound) {
			return nil, myErrors.ErrResourceNotFound
		}
		s.logger.Warn("live 详情查询失败，本次调用回退到静态目录", zap.Error(err), zap.Uint64("resourceID", id))
		return s.catalogDetail(id)
	}

	// 命中即计数；计数失败只记日志，绝不影响详情返回
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("浏览量自增失败（已忽略）", zap.Error(err), zap.Uint64("resourceID", id))
	}

	return vo.NewResourceVO(row.Resource, row.Meta), nil
}

// catalogDetail 是详情查询的静态目录分支。
// - 目录数据随进程消失，浏览量直接在内存里加，不要求持久。
func (s *resourceQueryService) catalogDetail(id uint64) (*vo.ResourceVO, error) {
	view := s.catalog.GetByID(id)
	if view == nil {
		return nil, myErrors.ErrResourceNotFound
	}
	s.catalog.IncrementView(id)
	return view, nil
}

// GetRelatedResources 实现相关推荐。
func (s *resourceQueryService) GetRelatedResources(ctx context.Context, id uint64, limit int) ([]*vo.ResourceVO, error) {
	if limit <= 0 {
		limit = constant.DefaultRelatedLimit
	}

	// 先走详情查询拿到源资源的两个分类维度（该读取同样带浏览量副作用）
	source, err := s.GetResourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, myErrors.ErrResourceNotFound) {
			return []*vo.ResourceVO{}, nil
		}
		// GetResourceByID 只会返回未找到；防御性兜底
		return []*vo.ResourceVO{}, nil
	}

	if !s.gate.Available(ctx) {
		return s.catalog.ListRelated(id, source.Category1, source.Category2, limit), nil
	}

	rows, err := s.repo.ListRelated(ctx, id, source.Category1, source.Category2, limit)
	if err != nil {
		s.logger.Warn("live 相关推荐查询失败，本次调用回退到静态目录", zap.Error(err), zap.Uint64("resourceID", id))
		return s.catalog.ListRelated(id, source.Category1, source.Category2, limit), nil
	}
	return mapRowsToVO(rows), nil
}

// GetCategoryStats 实现一级分类统计。
func (s *resourceQueryService) GetCategoryStats(ctx context.Context) ([]*vo.CategoryStatVO, error) {
	var values []string

	if s.gate.Available(ctx) {
		lived, err := s.repo.ListCategory1(ctx)
		if err != nil {
			s.logger.Warn("live 分类统计失败，本次调用回退到静态目录", zap.Error(err))
			values = s.catalog.Category1Values()
		} else {
			values = lived
		}
	} else {
		values = s.catalog.Category1Values()
	}

	return aggregateCategories(values), nil
}

// aggregateCategories 把一级分类列聚合成频次表。
// - 按数量降序；数量相同的分类保持首次出现的先后次序（稳定排序），
//   保证无写入时重复调用输出完全一致。
// - 截断到前 constant.TopCategoryCount 名。
func aggregateCategories(values []string) []*vo.CategoryStatVO {
	counts := make(map[string]int64, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	stats := make([]*vo.CategoryStatVO, 0, len(order))
	for _, v := range order {
		stats = append(stats, &vo.CategoryStatVO{Category1: v, Count: counts[v]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if len(stats) > constant.TopCategoryCount {
		stats = stats[:constant.TopCategoryCount]
	}
	return stats
}

// mapRowsToVO 把仓库层的连表结果批量转换为响应视图。
func mapRowsToVO(rows []*mysql.ResourceWithMeta) []*vo.ResourceVO {
	views := make([]*vo.ResourceVO, 0, len(rows))
	for _, row := range rows {
		if row == nil || row.Resource == nil {
			continue
		}
		views = append(views, vo.NewResourceVO(row.Resource, row.Meta))
	}
	return views
}
