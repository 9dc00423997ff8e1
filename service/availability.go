package service

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/yunshare/resource_service/pkg/core"
	"github.com/yunshare/resource_service/repo/mysql"
)

// StoreGate 是存储连通性探针与降级状态的唯一持有者。
// - 状态机只有两个状态 {Live, Degraded}，且只有 Live→Degraded 一条迁移，
//   由探针失败触发；进程生命周期内不会迁回 Live，即使存储随后恢复。
//   （这是沿用的既有行为，是否应支持恢复见 DESIGN.md 的开放问题。）
// - degraded 标志单写多读：只有本类型写入，其他组件一律通过 Available/Degraded
//   只读访问。atomic.Bool 足够，无需额外加锁。
// - 通过构造函数注入共享，不使用包级单例。
type StoreGate struct {
	repo     mysql.ResourceRepository
	logger   *core.ZapLogger
	degraded atomic.Bool
}

// NewStoreGate 构建探针。
// - repo 为 nil 表示存储未配置，直接以降级状态启动。
func NewStoreGate(repo mysql.ResourceRepository, logger *core.ZapLogger) *StoreGate {
	gate := &StoreGate{
		repo:   repo,
		logger: logger,
	}
	if repo == nil {
		logger.Warn("存储未配置，服务以降级模式启动，全部读取走静态目录")
		gate.degraded.Store(true)
	}
	return gate
}

// Available 报告 live 存储当前是否可用。
// - 未降级时每次调用都做一次最廉价的探测（取一行主键）；探测失败记录告警、
//   置位降级标志并返回 false。
// - 已降级后不再探测，直接返回 false。
func (g *StoreGate) Available(ctx context.Context) bool {
	if g.degraded.Load() {
		return false
	}
	if err := g.repo.Ping(ctx); err != nil {
		g.logger.Warn("存储连通性探测失败，切换到降级模式", zap.Error(err))
		g.degraded.Store(true)
		return false
	}
	return true
}

// Degraded 只读返回当前是否处于降级模式，不触发探测。健康检查展示用。
func (g *StoreGate) Degraded() bool {
	return g.degraded.Load()
}
