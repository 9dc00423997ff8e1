package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 从 yaml 文件加载配置并反序列化到 cfg。
// - 环境变量可覆盖文件内容，层级用下划线分隔（如 MYSQLCONFIG_WRITE_DSN）。
// - cfg 必须是指向配置结构体的指针。
func LoadConfig(configFile string, cfg interface{}) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件失败 (%s): %w", configFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("解析配置失败: %w", err)
	}
	return nil
}
