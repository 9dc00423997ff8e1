package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yunshare/resource_service/models/dto"
	"github.com/yunshare/resource_service/myErrors"
	"github.com/yunshare/resource_service/pkg/response"
	"github.com/yunshare/resource_service/service"
)

// ResourceController 定义资源查询控制器的结构体
type ResourceController struct {
	queryService service.ResourceQueryService
}

// NewResourceController 构造函数，用于创建 ResourceController 实例
func NewResourceController(queryService service.ResourceQueryService) *ResourceController {
	return &ResourceController{
		queryService: queryService,
	}
}

// Search 搜索资源
// @Summary      搜索资源
// @Description  按关键词、分类、网盘类型过滤并分页返回资源列表。非法的分页/排序参数会被收敛而非报错。
// @Tags         resources (资源)
// @Produce      json
// @Param        keyword query string false "关键词，匹配名称与别名"
// @Param        category1 query string false "一级分类"
// @Param        category2 query string false "二级分类"
// @Param        drive_type query string false "网盘类型"
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        limit query int false "每页数量，收敛到 [1,100]" default(20)
// @Param        sort query string false "排序字段 (hot/view_count/created_at/name)" default(hot)
// @Param        order query string false "排序方向 (ASC/DESC)" default(DESC)
// @Success      200 {object} response.Response[vo.SearchResultVO] "搜索结果"
// @Router       /api/search [get]
func (ctrl *ResourceController) Search(c *gin.Context) {
	var req dto.SearchRequest
	// 参数均可选；越界取值由服务层 Normalize 收敛，这里只拦截类型不符的输入
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidParam, "无效的查询参数: "+err.Error())
		return
	}

	result, err := ctrl.queryService.Search(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "搜索失败，请稍后重试")
		return
	}
	response.RespondSuccess(c, result, "")
}

// GetHotResources 获取热门资源
// @Summary      获取热门资源
// @Description  按热度分降序（浏览量兜底）返回资源列表。
// @Tags         resources (资源)
// @Produce      json
// @Param        limit query int false "返回条数" default(10)
// @Success      200 {object} response.Response[[]vo.ResourceVO] "热门资源列表"
// @Router       /api/hot-resources [get]
func (ctrl *ResourceController) GetHotResources(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resources, err := ctrl.queryService.GetHotResources(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "获取热门资源失败，请稍后重试")
		return
	}
	response.RespondSuccess(c, resources, "")
}

// GetResourceByID 获取资源详情
// @Summary      获取资源详情
// @Description  按 ID 返回单条资源（含元数据投影），命中后浏览量 +1。不存在或已失效返回 404。
// @Tags         resources (资源)
// @Produce      json
// @Param        id path int true "资源 ID"
// @Success      200 {object} response.Response[vo.ResourceVO] "资源详情"
// @Failure      400 {object} response.Response[any] "无效的资源 ID"
// @Failure      404 {object} response.Response[any] "资源不存在或已失效"
// @Router       /api/resource/{id} [get]
func (ctrl *ResourceController) GetResourceByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// 任何存储访问之前先拒绝非法标识
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidParam, "无效的资源ID")
		return
	}

	resource, err := ctrl.queryService.GetResourceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, myErrors.ErrResourceNotFound) {
			response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "资源不存在或已失效")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "获取资源详情失败，请稍后重试")
		return
	}
	response.RespondSuccess(c, resource, "")
}

// GetRelatedResources 获取相关推荐
// @Summary      获取相关推荐
// @Description  返回与指定资源任一分类维度相同的其他资源，按热度排列；源资源不存在时返回空列表。
// @Tags         resources (资源)
// @Produce      json
// @Param        id path int true "资源 ID"
// @Param        limit query int false "返回条数" default(6)
// @Success      200 {object} response.Response[[]vo.ResourceVO] "相关资源列表"
// @Failure      400 {object} response.Response[any] "无效的资源 ID"
// @Router       /api/related/{id} [get]
func (ctrl *ResourceController) GetRelatedResources(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidParam, "无效的资源ID")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	resources, err := ctrl.queryService.GetRelatedResources(c.Request.Context(), id, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "获取相关推荐失败，请稍后重试")
		return
	}
	response.RespondSuccess(c, resources, "")
}

// GetCategoryStats 获取分类统计
// @Summary      获取分类统计
// @Description  返回非失效资源的一级分类频次表，按数量降序取前 10。
// @Tags         resources (资源)
// @Produce      json
// @Success      200 {object} response.Response[[]vo.CategoryStatVO] "分类统计"
// @Router       /api/category-stats [get]
func (ctrl *ResourceController) GetCategoryStats(c *gin.Context) {
	stats, err := ctrl.queryService.GetCategoryStats(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "获取分类统计失败，请稍后重试")
		return
	}
	response.RespondSuccess(c, stats, "")
}

// RegisterRoutes 注册 ResourceController 的路由
func (ctrl *ResourceController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/search", ctrl.Search)
	group.GET("/hot-resources", ctrl.GetHotResources)
	group.GET("/resource/:id", ctrl.GetResourceByID)
	group.GET("/related/:id", ctrl.GetRelatedResources)
	group.GET("/category-stats", ctrl.GetCategoryStats)
}
