package myErrors

import "errors"

// ErrResourceNotFound 表示资源不存在或已失效（is_expired=1）。
// - 这是正常的业务结果而非故障：查询层返回它时不会触发降级回退。
// - 调用方用 errors.Is 判断后映射为 404。
var ErrResourceNotFound = errors.New("resource: not found or expired")
