package constant

// 服务标识
const (
	ServiceName    = "resource_service"
	ServiceVersion = "1.0.0"
)

// 分页与排行相关常量
const (
	// DefaultPage 默认页码
	DefaultPage = 1
	// DefaultPageLimit 默认每页数量
	DefaultPageLimit = 20
	// MaxPageLimit 每页数量上限
	MaxPageLimit = 100

	// DefaultHotLimit 热门资源默认条数
	DefaultHotLimit = 10
	// DefaultRelatedLimit 相关推荐默认条数
	DefaultRelatedLimit = 6
	// TopCategoryCount 分类统计保留的条目数
	TopCategoryCount = 10
)

// 排序默认值
const (
	DefaultSortField = "hot"
	DefaultSortOrder = "DESC"
)
