package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/models/vo"
)

func newRequest(mutate func(*dto.SearchRequest)) *dto.SearchRequest {
	req := &dto.SearchRequest{}
	if mutate != nil {
		mutate(req)
	}
	req.Normalize()
	return req
}

func resourceIDs(items []*vo.ResourceVO) []uint64 {
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestCatalog_Search_Keyword(t *testing.T) {
	catalog := NewCatalog()

	t.Run("按名称命中单条", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Keyword = "阿甘" }))
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, uint64(2), result.Items[0].ID)
	})

	t.Run("别名匹配不区分大小写", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Keyword = "SHAWSHANK" }))
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, uint64(1), result.Items[0].ID)
	})

	t.Run("无命中返回空页", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Keyword = "不存在的资源" }))
		assert.Equal(t, int64(0), result.Total)
		assert.Empty(t, result.Items)
		assert.Equal(t, int64(0), result.TotalPages)
	})
}

// 静态记录是预合并的扁平视图，关键词额外覆盖 title。
func TestMatches_TitleKeyword(t *testing.T) {
	title := "千与千寻"
	record := &vo.ResourceVO{
		ID:    100,
		Name:  "resource-100",
		Alias: "res-100",
		Title: &title,
	}

	hit := newRequest(func(r *dto.SearchRequest) { r.Keyword = "千寻" })
	assert.True(t, matches(record, hit))

	miss := newRequest(func(r *dto.SearchRequest) { r.Keyword = "龙猫" })
	assert.False(t, matches(record, miss))
}

func TestMatches_ExcludesExpired(t *testing.T) {
	record := &vo.ResourceVO{ID: 101, Name: "已失效资源", IsExpired: 1}
	assert.False(t, matches(record, newRequest(nil)))
}

func TestCatalog_Search_Filters(t *testing.T) {
	catalog := NewCatalog()

	t.Run("二级分类等值过滤", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Category2 = "电视剧" }))
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, []uint64{4, 5}, resourceIDs(result.Items))
	})

	t.Run("网盘类型过滤且按 hot 降序", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.DriveType = "阿里云" }))
		assert.Equal(t, []uint64{5, 2}, resourceIDs(result.Items))
	})

	t.Run("条件之间取交集", func(t *testing.T) {
		result := catalog.Search(newRequest(func(r *dto.SearchRequest) {
			r.Category2 = "电影"
			r.DriveType = "百度云"
		}))
		assert.Equal(t, []uint64{1}, resourceIDs(result.Items))
	})
}

// 静态路径只按 hot 降序，入参里的 sort/order 被接受但忽略。
func TestCatalog_Search_SortIgnored(t *testing.T) {
	catalog := NewCatalog()
	result := catalog.Search(newRequest(func(r *dto.SearchRequest) {
		r.Sort = "name"
		r.Order = "ASC"
	}))
	assert.Equal(t, []uint64{4, 1, 3, 5, 2}, resourceIDs(result.Items))
}

func TestCatalog_Search_Paging(t *testing.T) {
	catalog := NewCatalog()

	page1 := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Page = 1; r.Limit = 2 }))
	assert.Equal(t, int64(5), page1.Total)
	assert.Equal(t, int64(3), page1.TotalPages)
	assert.Equal(t, []uint64{4, 1}, resourceIDs(page1.Items))

	page3 := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Page = 3; r.Limit = 2 }))
	assert.Equal(t, []uint64{2}, resourceIDs(page3.Items))

	beyond := catalog.Search(newRequest(func(r *dto.SearchRequest) { r.Page = 10; r.Limit = 2 }))
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(5), beyond.Total, "超界页码不影响总条数")
}

func TestCatalog_GetByID(t *testing.T) {
	catalog := NewCatalog()

	found := catalog.GetByID(3)
	require.NotNil(t, found)
	assert.Equal(t, "泰坦尼克号", found.Name)

	assert.Nil(t, catalog.GetByID(9999))

	expired := &Catalog{resources: []*vo.ResourceVO{{ID: 50, Name: "失效", IsExpired: 1}}}
	assert.Nil(t, expired.GetByID(50), "已失效记录等同于不存在")
}

func TestCatalog_IncrementView(t *testing.T) {
	catalog := NewCatalog()
	before := catalog.GetByID(1).ViewCount

	catalog.IncrementView(1)
	assert.Equal(t, before+1, catalog.GetByID(1).ViewCount)

	// 未命中时静默返回
	catalog.IncrementView(9999)
}

func TestCatalog_ListHot(t *testing.T) {
	catalog := NewCatalog()

	all := catalog.ListHot(10)
	assert.Equal(t, []uint64{4, 1, 3, 5, 2}, resourceIDs(all))

	top3 := catalog.ListHot(3)
	assert.Equal(t, []uint64{4, 1, 3}, resourceIDs(top3))
}

func TestCatalog_ListRelated(t *testing.T) {
	catalog := NewCatalog()

	t.Run("跨两个维度取或并排除自身", func(t *testing.T) {
		related := catalog.ListRelated(1, "影视资源", "电影", 10)
		assert.Equal(t, []uint64{4, 3, 5, 2}, resourceIDs(related))
	})

	t.Run("仅二级分类参与匹配", func(t *testing.T) {
		related := catalog.ListRelated(4, "", "电视剧", 10)
		assert.Equal(t, []uint64{5}, resourceIDs(related))
	})

	t.Run("两个维度都为空返回空列表", func(t *testing.T) {
		related := catalog.ListRelated(1, "", "", 10)
		assert.NotNil(t, related)
		assert.Empty(t, related)
	})

	t.Run("limit 截断", func(t *testing.T) {
		related := catalog.ListRelated(1, "影视资源", "", 2)
		assert.Equal(t, []uint64{4, 3}, resourceIDs(related))
	})
}

func TestCatalog_Category1Values(t *testing.T) {
	catalog := NewCatalog()
	values := catalog.Category1Values()
	assert.Len(t, values, catalog.Size())
	for _, v := range values {
		assert.Equal(t, "影视资源", v)
	}
}
