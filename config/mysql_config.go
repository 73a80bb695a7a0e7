package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// MySQLConfig 学校论坛数据库（MySQL/TiDB）连接配置，仅 fetch 命令使用
type MySQLConfig struct {
	Host     string   `json:"host" yaml:"host"`
	Port     int      `json:"port" yaml:"port"`
	User     string   `json:"user" yaml:"user"`
	Password string   `json:"password" yaml:"password"` // 支持 ${MYSQL_PASSWORD} 形式引用环境变量
	Database string   `json:"database" yaml:"database"`
	Replicas []string `json:"replicas" yaml:"replicas"` // 只读副本 DSN 列表，可为空
}

func (m *MySQLConfig) Validate() []error {
	var errs = make([]error, 0)
	if m.Host == "" {
		errs = append(errs, errors.Errorf("MySQL 主机地址不能为空"))
	}
	if m.Database == "" {
		errs = append(errs, errors.Errorf("MySQL 数据库名不能为空"))
	}
	return errs
}

func NewDefaultMySQLConfig() *MySQLConfig {
	return &MySQLConfig{
		Host:     "127.0.0.1",
		Port:     3306,
		User:     "root",
		Database: "school_board",
	}
}

func (m *MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}
