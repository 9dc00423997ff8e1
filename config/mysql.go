package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"` // 直接使用 DSN 字符串
}

// MySQLConfig 包含主库和从库的配置 (使用 DSN)
// - Write.DSN 为空表示未配置数据库，服务进入降级模式。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"` // 主库配置
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`   // 从库配置列表 (可以为空，表示不启用读写分离)

	// 连接池设置
	MaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
