// Package config 负责服务端运行配置的加载:默认值、配置文件与环境变量三层合并。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 汇总服务端运行配置。
type Config struct {
	Host        string
	Port        int
	ServicesDir string
	LogLevel    string
	LogDir      string
}

// Addr 返回监听地址。
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load 读取配置,优先级从低到高:默认值、配置文件、EASYMAAS_* 环境变量。
// path 为空时在当前目录查找 easymaas.yaml,找不到不算错误;
// 显式指定的文件必须存在。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("services_dir", "services")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "log")

	v.SetEnvPrefix("EASYMAAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("easymaas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		ServicesDir: v.GetString("services_dir"),
		LogLevel:    v.GetString("log.level"),
		LogDir:      v.GetString("log.dir"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.ServicesDir) == "" {
		return nil, fmt.Errorf("services dir is required")
	}
	return cfg, nil
}
