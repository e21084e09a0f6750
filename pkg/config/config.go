/*
 * @Description: 统一配置管理 (手动加载 ini，再用环境变量覆盖)
 * @Author: blogly-dev
 * @Date: 2026-10-12 11:02:37
 * @LastEditTime: 2026-10-15 17:44:09
 * @LastEditors: blogly-dev
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// DefaultFilePath 是 NewConfig 读取的配置文件位置
const DefaultFilePath = "data/conf.ini"

// EnvPrefix 环境变量前缀，例如 BLOGLY_DATABASE_HOST
const EnvPrefix = "BLOGLY"

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyDefaultImageURL,
	KeyFormsPerMinute, KeyFormsBurst,
}

const (
	KeyServerPort      = "System.Port"
	KeyServerDebug     = "System.Debug"
	KeyDBType          = "Database.Type"
	KeyDBHost          = "Database.Host"
	KeyDBPort          = "Database.Port"
	KeyDBUser          = "Database.User"
	KeyDBPassword      = "Database.Password"
	KeyDBName          = "Database.Name"
	KeyDBDebug         = "Database.Debug"
	KeyDefaultImageURL = "Blogly.DefaultImageURL"
	KeyFormsPerMinute  = "RateLimit.FormsPerMinute"
	KeyFormsBurst      = "RateLimit.Burst"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 从 data/conf.ini 加载配置，文件不存在时自动生成一份默认配置
func NewConfig() (*Config, error) {
	return load(DefaultFilePath, true)
}

// NewConfigFromFile 从指定路径加载配置，文件不存在时只使用内部默认值和环境变量
func NewConfigFromFile(filePath string) (*Config, error) {
	return load(filePath, false)
}

func load(filePath string, createIfMissing bool) (*Config, error) {
	vp := viper.New()
	setDefaults(vp)

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			// 如果文件存在但格式错误
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
		iniCfg = nil
		if createIfMissing {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				// 默认分区 "DEFAULT" 下的键不带前缀
				if section.Name() == ini.DefaultSection {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Printf("从 %s 文件加载了配置。", filePath)
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", EnvPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault(KeyServerPort, constant.DefaultServerPort)
	vp.SetDefault(KeyDBType, "sqlite")
	vp.SetDefault(KeyDBName, constant.DefaultSQLiteName)
	vp.SetDefault(KeyDefaultImageURL, constant.DefaultImageURL)
	vp.SetDefault(KeyFormsPerMinute, constant.DefaultFormsPerMinute)
	vp.SetDefault(KeyFormsBurst, constant.DefaultFormsBurst)
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// Set 覆盖一个配置项，测试和命令行参数会用到
func (c *Config) Set(key string, value any) {
	c.vp.Set(key, value)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 默认使用 SQLite
	defaultConfig := `[System]
Port = 8091
Debug = false

[Database]
Type = sqlite
Name = blogly.db
Debug = false

[Blogly]
DefaultImageURL = ` + constant.DefaultImageURL + `

# 每个 IP 提交表单的频率限制
[RateLimit]
FormsPerMinute = 60
Burst = 20
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
