package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/models/entities"
	"github.com/yunshare/resource_service/myErrors"
	"github.com/yunshare/resource_service/pkg/core"
	"github.com/yunshare/resource_service/repo/mysql"
	"github.com/yunshare/resource_service/repo/static"
)

var errStorage = errors.New("storage: connection refused")

// fakeRepository 以函数字段模拟各仓库操作，便于逐测试定制失败行为。
type fakeRepository struct {
	pingCalls      int
	incrementCalls int

	pingFn      func(ctx context.Context) error
	searchFn    func(ctx context.Context, req *dto.SearchRequest) ([]*mysql.ResourceWithMeta, int64, error)
	getByIDFn   func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error)
	listHotFn   func(ctx context.Context, limit int) ([]*mysql.ResourceWithMeta, error)
	relatedFn   func(ctx context.Context, excludeID uint64, category1, category2 string, limit int) ([]*mysql.ResourceWithMeta, error)
	categoryFn  func(ctx context.Context) ([]string, error)
	incrementFn func(ctx context.Context, id uint64) error
}

func (f *fakeRepository) Ping(ctx context.Context) error {
	f.pingCalls++
	if f.pingFn != nil {
		return f.pingFn(ctx)
	}
	return nil
}

func (f *fakeRepository) Search(ctx context.Context, req *dto.SearchRequest) ([]*mysql.ResourceWithMeta, int64, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, req)
	}
	return []*mysql.ResourceWithMeta{}, 0, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, myErrors.ErrResourceNotFound
}

func (f *fakeRepository) ListHot(ctx context.Context, limit int) ([]*mysql.ResourceWithMeta, error) {
	if f.listHotFn != nil {
		return f.listHotFn(ctx, limit)
	}
	return []*mysql.ResourceWithMeta{}, nil
}

func (f *fakeRepository) ListRelated(ctx context.Context, excludeID uint64, category1, category2 string, limit int) ([]*mysql.ResourceWithMeta, error) {
	if f.relatedFn != nil {
		return f.relatedFn(ctx, excludeID, category1, category2, limit)
	}
	return []*mysql.ResourceWithMeta{}, nil
}

func (f *fakeRepository) ListCategory1(ctx context.Context) ([]string, error) {
	if f.categoryFn != nil {
		return f.categoryFn(ctx)
	}
	return []string{}, nil
}

func (f *fakeRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	f.incrementCalls++
	if f.incrementFn != nil {
		return f.incrementFn(ctx, id)
	}
	return nil
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(core.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	return logger
}

func newTestService(t *testing.T, repo mysql.ResourceRepository) (ResourceQueryService, *StoreGate) {
	t.Helper()
	logger := newTestLogger(t)
	gate := NewStoreGate(repo, logger)
	svc := NewResourceQueryService(gate, repo, static.NewCatalog(), logger)
	return svc, gate
}

func liveRow(id uint64, name, category1, category2 string) *mysql.ResourceWithMeta {
	return &mysql.ResourceWithMeta{
		Resource: &entities.Resource{
			ID:        id,
			Name:      name,
			Category1: category1,
			Category2: category2,
		},
	}
}

func TestStoreGate_StickyDegradation(t *testing.T) {
	healthy := true
	repo := &fakeRepository{
		pingFn: func(ctx context.Context) error {
			if healthy {
				return nil
			}
			return errStorage
		},
	}
	gate := NewStoreGate(repo, newTestLogger(t))
	ctx := context.Background()

	assert.True(t, gate.Available(ctx))
	assert.False(t, gate.Degraded())

	healthy = false
	assert.False(t, gate.Available(ctx))
	assert.True(t, gate.Degraded())

	// 存储恢复也不再探测，降级具有粘性
	healthy = true
	calls := repo.pingCalls
	assert.False(t, gate.Available(ctx))
	assert.Equal(t, calls, repo.pingCalls, "降级后不得再触发探测")
}

func TestStoreGate_NilRepoStartsDegraded(t *testing.T) {
	gate := NewStoreGate(nil, newTestLogger(t))
	assert.True(t, gate.Degraded())
	assert.False(t, gate.Available(context.Background()))
}

func TestSearch_LiveSuccess(t *testing.T) {
	repo := &fakeRepository{
		searchFn: func(ctx context.Context, req *dto.SearchRequest) ([]*mysql.ResourceWithMeta, int64, error) {
			return []*mysql.ResourceWithMeta{liveRow(11, "live 资源", "影视资源", "电影")}, 41, nil
		},
	}
	svc, _ := newTestService(t, repo)

	result, err := svc.Search(context.Background(), &dto.SearchRequest{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, uint64(11), result.Items[0].ID)
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, int64(3), result.TotalPages, "41 条按每页 20 应为 3 页")
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
}

func TestSearch_PerCallFallback(t *testing.T) {
	repo := &fakeRepository{
		searchFn: func(ctx context.Context, req *dto.SearchRequest) ([]*mysql.ResourceWithMeta, int64, error) {
			return nil, 0, errStorage
		},
	}
	svc, gate := newTestService(t, repo)

	result, err := svc.Search(context.Background(), &dto.SearchRequest{})
	require.NoError(t, err, "live 查询失败对调用方不可见")
	assert.Equal(t, int64(5), result.Total, "结果来自静态目录")

	// 查询层失败只影响本次调用，不改全局状态
	assert.False(t, gate.Degraded())
}

func TestSearch_DegradedUsesCatalog(t *testing.T) {
	repo := &fakeRepository{
		pingFn: func(ctx context.Context) error { return errStorage },
		searchFn: func(ctx context.Context, req *dto.SearchRequest) ([]*mysql.ResourceWithMeta, int64, error) {
			t.Fatal("降级后不应触达 live 仓库")
			return nil, 0, nil
		},
	}
	svc, _ := newTestService(t, repo)

	result, err := svc.Search(context.Background(), &dto.SearchRequest{Keyword: "阿甘"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
}

func TestGetHotResources_FallbackAndDefaultLimit(t *testing.T) {
	repo := &fakeRepository{
		listHotFn: func(ctx context.Context, limit int) ([]*mysql.ResourceWithMeta, error) {
			assert.Equal(t, 10, limit, "非法 limit 收敛为默认值")
			return nil, errStorage
		},
	}
	svc, _ := newTestService(t, repo)

	items, err := svc.GetHotResources(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, uint64(4), items[0].ID, "静态目录按 hot 降序")
}

func TestGetResourceByID_NotFoundPassthrough(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
			return nil, myErrors.ErrResourceNotFound
		},
	}
	svc, gate := newTestService(t, repo)

	// id=1 在静态目录中存在；未找到不触发回退，错误原样返回
	view, err := svc.GetResourceByID(context.Background(), 1)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, myErrors.ErrResourceNotFound)
	assert.False(t, gate.Degraded())
	assert.Equal(t, 0, repo.incrementCalls, "未命中不计数")
}

func TestGetResourceByID_QueryFailureFallsBack(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
			return nil, errStorage
		},
	}
	svc, _ := newTestService(t, repo)

	view, err := svc.GetResourceByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "肖申克的救赎", view.Name)
}

func TestGetResourceByID_CounterErrorSwallowed(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
			return liveRow(id, "live 资源", "影视资源", "电影"), nil
		},
		incrementFn: func(ctx context.Context, id uint64) error { return errStorage },
	}
	svc, _ := newTestService(t, repo)

	view, err := svc.GetResourceByID(context.Background(), 11)
	require.NoError(t, err, "计数失败不影响详情返回")
	require.NotNil(t, view)
	assert.Equal(t, 1, repo.incrementCalls)
}

func TestGetResourceByID_DegradedIncrementsCatalogView(t *testing.T) {
	repo := &fakeRepository{
		pingFn: func(ctx context.Context) error { return errStorage },
	}
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	first, err := svc.GetResourceByID(ctx, 2)
	require.NoError(t, err)
	initial := first.ViewCount

	second, err := svc.GetResourceByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, initial+1, second.ViewCount, "降级路径在内存中累加浏览量")
}

func TestGetRelatedResources_MissingSourceYieldsEmpty(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
			return nil, myErrors.ErrResourceNotFound
		},
	}
	svc, _ := newTestService(t, repo)

	related, err := svc.GetRelatedResources(context.Background(), 404, 6)
	require.NoError(t, err, "源资源不存在返回空列表而非错误")
	assert.NotNil(t, related)
	assert.Empty(t, related)
}

func TestGetRelatedResources_UsesSourceCategories(t *testing.T) {
	var gotCategory1, gotCategory2 string
	var gotExclude uint64
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id uint64) (*mysql.ResourceWithMeta, error) {
			return liveRow(id, "源资源", "影视资源", "电视剧"), nil
		},
		relatedFn: func(ctx context.Context, excludeID uint64, category1, category2 string, limit int) ([]*mysql.ResourceWithMeta, error) {
			gotExclude, gotCategory1, gotCategory2 = excludeID, category1, category2
			return []*mysql.ResourceWithMeta{liveRow(21, "相关资源", "影视资源", "电视剧")}, nil
		},
	}
	svc, _ := newTestService(t, repo)

	related, err := svc.GetRelatedResources(context.Background(), 7, 6)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, uint64(7), gotExclude)
	assert.Equal(t, "影视资源", gotCategory1)
	assert.Equal(t, "电视剧", gotCategory2)
	assert.Equal(t, 1, repo.incrementCalls, "相关推荐经由详情读取，带浏览量副作用")
}

func TestGetCategoryStats_AggregatesAndFallsBack(t *testing.T) {
	t.Run("live 值按频次降序且同频保持首现次序", func(t *testing.T) {
		repo := &fakeRepository{
			categoryFn: func(ctx context.Context) ([]string, error) {
				return []string{"影视资源", "学习资料", "影视资源", "软件工具", "学习资料", "影视资源"}, nil
			},
		}
		svc, _ := newTestService(t, repo)

		stats, err := svc.GetCategoryStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 3)
		assert.Equal(t, "影视资源", stats[0].Category1)
		assert.Equal(t, int64(3), stats[0].Count)
		assert.Equal(t, "学习资料", stats[1].Category1)
		assert.Equal(t, int64(2), stats[1].Count)
		assert.Equal(t, "软件工具", stats[2].Category1)
	})

	t.Run("查询失败回退到静态目录", func(t *testing.T) {
		repo := &fakeRepository{
			categoryFn: func(ctx context.Context) ([]string, error) { return nil, errStorage },
		}
		svc, _ := newTestService(t, repo)

		stats, err := svc.GetCategoryStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "影视资源", stats[0].Category1)
		assert.Equal(t, int64(5), stats[0].Count)
	})
}

func TestAggregateCategories_TruncatesToTop(t *testing.T) {
	values := make([]string, 0, 24)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, n := range names {
		for j := 0; j <= i; j++ {
			values = append(values, n)
		}
	}

	stats := aggregateCategories(values)
	require.Len(t, stats, 10)
	assert.Equal(t, "l", stats[0].Category1)
	assert.Equal(t, int64(12), stats[0].Count)
	assert.Equal(t, "c", stats[9].Category1, "频次最低的两个分类被截掉")
}
