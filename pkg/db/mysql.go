package db

import (
	"sync"

	"emotion-analysis-log/config"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var tidb *gorm.DB
var tidbOnce sync.Once

// InitTiDB 初始化学校论坛数据库连接（MySQL/TiDB）
// 配置了只读副本时通过 dbresolver 做读写分离
func InitTiDB(cfg *config.GlobalConfig) error {
	var err error
	tidbOnce.Do(func() {
		if cfg.MySQLConfig == nil {
			zap.S().Error("MySQL 配置未设置")
			return
		}

		tidb, err = gorm.Open(mysql.Open(cfg.MySQLConfig.DSN()), &gorm.Config{})
		if err != nil {
			zap.S().Errorf("连接 MySQL 失败: %v", err)
			return
		}

		if len(cfg.MySQLConfig.Replicas) > 0 {
			replicas := make([]gorm.Dialector, 0, len(cfg.MySQLConfig.Replicas))
			for _, dsn := range cfg.MySQLConfig.Replicas {
				replicas = append(replicas, mysql.Open(dsn))
			}
			if err = tidb.Use(dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
			})); err != nil {
				zap.S().Errorf("注册只读副本失败: %v", err)
				return
			}
		}

		zap.S().Debug("MySQL 初始化完成...")
	})
	return err
}

// GetTiDB 获取学校论坛数据库连接
func GetTiDB() *gorm.DB {
	return tidb
}
