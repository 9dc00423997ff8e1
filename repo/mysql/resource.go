package mysql

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/models/entities"
	"github.com/yunshare/resource_service/myErrors"
	"github.com/yunshare/resource_service/pkg/core"
)

// sortColumns 把归一化后的排序字段映射到真实列名。
// - 双重保险：dto.Normalize 已经收敛过，仓库层再次校验，排序字段绝不拼接任意输入。
var sortColumns = map[string]string{
	"hot":        "hot",
	"view_count": "view_count",
	"created_at": "created_at",
	"name":       "name",
}

// ResourceWithMeta 是资源与其关联元数据的查询结果。
// - Meta 可能为 nil（资源未关联元数据，或关联的元数据已被删除）。
// - 仓库层负责组装出这个静态类型，视图装配不接触松散的连表行。
type ResourceWithMeta struct {
	Resource *entities.Resource
	Meta     *entities.ResourceMeta
}

// ResourceRepository 定义了资源数据在 MySQL 中的读取操作接口。
// - 本服务整体只读，唯一的写操作是浏览量自增。
type ResourceRepository interface {
	// Ping 对资源表做最廉价的存在性探测（取一行主键，LIMIT 1）。
	// - 供连通性探针使用；空表不算失败。
	Ping(ctx context.Context) error

	// Search 按过滤条件分页查询资源，并返回分页前的总条数。
	// - req 必须已经过 Normalize；keyword 对 name/alias 做子串匹配（大小写不敏感由
	//   MySQL 排序规则保证），category1/category2/drive_type 做等值过滤，条件之间取交集。
	// - 恒排除 is_expired=1 的记录。
	Search(ctx context.Context, req *dto.SearchRequest) ([]*ResourceWithMeta, int64, error)

	// GetByID 按 ID 查询单条非失效资源。
	// - 不存在与已失效对调用方不可区分，均返回 myErrors.ErrResourceNotFound。
	GetByID(ctx context.Context, id uint64) (*ResourceWithMeta, error)

	// ListHot 返回热度排行，hot 降序，view_count 降序兜底。
	ListHot(ctx context.Context, limit int) ([]*ResourceWithMeta, error)

	// ListRelated 查询与给定分类相关的资源。
	// - 匹配规则是跨两个分类维度的“或”：category1 相同或 category2 相同即算相关；
	//   空串的维度不参与匹配。排除 excludeID 自身与失效记录。
	// - 排序与 ListHot 相同。
	ListRelated(ctx context.Context, excludeID uint64, category1, category2 string, limit int) ([]*ResourceWithMeta, error)

	// ListCategory1 取出全部非失效资源的一级分类列（单列扫描），频次统计在服务层完成。
	ListCategory1(ctx context.Context) ([]string, error)

	// IncrementViewCount 浏览量 +1。
	// - 首选数据库侧的原子自增；若该写入被存储端拒绝，回退为读出后加一写回。
	// - 回退路径在并发调用下存在丢失更新的竞态，浏览量不是强一致指标，按约定接受，
	//   不额外加锁。
	IncrementViewCount(ctx context.Context, id uint64) error
}

// resourceRepository 是 ResourceRepository 接口针对 MySQL 的具体实现。
type resourceRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewResourceRepository 是 resourceRepository 的构造函数。
func NewResourceRepository(db *gorm.DB, logger *core.ZapLogger) ResourceRepository {
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

// Ping 实现最小代价的连通性探测。
func (r *resourceRepository) Ping(ctx context.Context) error {
	var ids []uint64
	// Find 在空表时不会返回 ErrRecordNotFound，只有真实的存储故障会报错。
	if err := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("资源表探测失败: %w", err)
	}
	return nil
}

// buildFilter 组装 Search 的公共过滤条件（不含分页与排序）。
func (r *resourceRepository) buildFilter(ctx context.Context, req *dto.SearchRequest) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Where("is_expired = ?", 0)

	if req.Keyword != "" {
		pattern := "%" + req.Keyword + "%"
		// 注意：live 路径只搜 name 和 alias，不搜元数据的 title；
		// 静态目录路径额外搜 title，两条路径的这处差异是有意保留的既有行为。
		query = query.Where("(name LIKE ? OR alias LIKE ?)", pattern, pattern)
	}
	if req.Category1 != "" {
		query = query.Where("category1 = ?", req.Category1)
	}
	if req.Category2 != "" {
		query = query.Where("category2 = ?", req.Category2)
	}
	if req.DriveType != "" {
		query = query.Where("drive_type = ?", req.DriveType)
	}
	return query
}

// Search 实现过滤 + 计数 + 排序 + 分页查询。
func (r *resourceRepository) Search(ctx context.Context, req *dto.SearchRequest) ([]*ResourceWithMeta, int64, error) {
	// 计数查询在分页之前执行，统计的是过滤后的全量
	var total int64
	if err := r.buildFilter(ctx, req).Count(&total).Error; err != nil {
		r.logger.Error("搜索资源：计数查询失败", zap.Error(err), zap.Any("req", req))
		return nil, 0, fmt.Errorf("统计资源总数失败: %w", err)
	}

	if total == 0 {
		return []*ResourceWithMeta{}, 0, nil
	}

	column, ok := sortColumns[req.Sort]
	if !ok {
		column = "hot"
	}
	direction := "DESC"
	if req.Order == "ASC" {
		direction = "ASC"
	}

	var resources []*entities.Resource
	if err := r.buildFilter(ctx, req).
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(req.Offset()).
		Limit(req.Limit).
		Find(&resources).Error; err != nil {
		r.logger.Error("搜索资源：列表查询失败",
			zap.Error(err),
			zap.Any("req", req),
			zap.Int("offset", req.Offset()),
		)
		return nil, 0, fmt.Errorf("查询资源列表失败: %w", err)
	}

	rows, err := r.attachMeta(ctx, resources)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByID 实现按 ID 查询单条非失效资源。
func (r *resourceRepository) GetByID(ctx context.Context, id uint64) (*ResourceWithMeta, error) {
	var resource entities.Resource
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_expired = ?", id, 0).
		First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrResourceNotFound
		}
		r.logger.Error("按 ID 查询资源失败", zap.Uint64("resourceID", id), zap.Error(err))
		return nil, fmt.Errorf("查询资源失败: %w", err)
	}

	rows, err := r.attachMeta(ctx, []*entities.Resource{&resource})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// ListHot 实现热度排行查询。
func (r *resourceRepository) ListHot(ctx context.Context, limit int) ([]*ResourceWithMeta, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).
		Where("is_expired = ?", 0).
		Order("hot DESC").
		Order("view_count DESC").
		Limit(limit).
		Find(&resources).Error; err != nil {
		r.logger.Error("查询热门资源失败", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("查询热门资源失败: %w", err)
	}
	return r.attachMeta(ctx, resources)
}

// ListRelated 实现跨两个分类维度取“或”的相关资源查询。
func (r *resourceRepository) ListRelated(ctx context.Context, excludeID uint64, category1, category2 string, limit int) ([]*ResourceWithMeta, error) {
	query := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Where("is_expired = ?", 0)

	// 两个维度都为空时不构成任何相关性条件，直接返回空集，避免退化成全表排行
	switch {
	case category1 != "" && category2 != "":
		query = query.Where("(category1 = ? OR category2 = ?)", category1, category2)
	case category1 != "":
		query = query.Where("category1 = ?", category1)
	case category2 != "":
		query = query.Where("category2 = ?", category2)
	default:
		return []*ResourceWithMeta{}, nil
	}

	var resources []*entities.Resource
	if err := query.
		Order("hot DESC").
		Order("view_count DESC").
		Limit(limit).
		Find(&resources).Error; err != nil {
		r.logger.Error("查询相关资源失败",
			zap.Error(err),
			zap.Uint64("excludeID", excludeID),
			zap.String("category1", category1),
			zap.String("category2", category2),
		)
		return nil, fmt.Errorf("查询相关资源失败: %w", err)
	}
	return r.attachMeta(ctx, resources)
}

// ListCategory1 实现一级分类单列扫描。
func (r *resourceRepository) ListCategory1(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Where("is_expired = ?", 0).
		Pluck("category1", &categories).Error; err != nil {
		r.logger.Error("查询一级分类列失败", zap.Error(err))
		return nil, fmt.Errorf("查询分类列失败: %w", err)
	}
	return categories, nil
}

// IncrementViewCount 实现浏览量自增与读改写回退。
func (r *resourceRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	// 首选：列表达式自增，数据库侧原子完成
	result := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error == nil {
		return nil
	}

	r.logger.Warn("浏览量原子自增被拒绝，回退为读改写",
		zap.Uint64("resourceID", id),
		zap.Error(result.Error),
	)

	// 回退：读出当前值加一写回。两个并发调用会互相覆盖，丢失其中一次计数；
	// 浏览量精度不在本服务的正确性约束内，接受该竞态。
	var resource entities.Resource
	if err := r.db.WithContext(ctx).
		Select("id", "view_count").
		First(&resource, id).Error; err != nil {
		return fmt.Errorf("回退读取浏览量失败: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Where("id = ?", id).
		UpdateColumn("view_count", resource.ViewCount+1).Error; err != nil {
		return fmt.Errorf("回退写回浏览量失败: %w", err)
	}
	return nil
}

// attachMeta 为一批资源补齐元数据，产出静态类型的连表结果。
// - 按 metadata_id 去重后做一次 IN 查询，避免逐行回表。
func (r *resourceRepository) attachMeta(ctx context.Context, resources []*entities.Resource) ([]*ResourceWithMeta, error) {
	rows := make([]*ResourceWithMeta, 0, len(resources))
	if len(resources) == 0 {
		return rows, nil
	}

	metaIDs := make([]uint64, 0, len(resources))
	seen := make(map[uint64]bool, len(resources))
	for _, res := range resources {
		if res.MetadataID != nil && !seen[*res.MetadataID] {
			seen[*res.MetadataID] = true
			metaIDs = append(metaIDs, *res.MetadataID)
		}
	}

	metaByID := make(map[uint64]*entities.ResourceMeta, len(metaIDs))
	if len(metaIDs) > 0 {
		var metas []*entities.ResourceMeta
		if err := r.db.WithContext(ctx).
			Where("id IN ?", metaIDs).
			Find(&metas).Error; err != nil {
			r.logger.Error("批量查询资源元数据失败", zap.Error(err), zap.Int("count", len(metaIDs)))
			return nil, fmt.Errorf("查询资源元数据失败: %w", err)
		}
		for _, meta := range metas {
			metaByID[meta.ID] = meta
		}
	}

	for _, res := range resources {
		row := &ResourceWithMeta{Resource: res}
		if res.MetadataID != nil {
			// 弱引用：元数据缺失不算错误，Meta 保持 nil
			row.Meta = metaByID[*res.MetadataID]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
