package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/excel"
	"emotion-analysis-log/pkg/model"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FetchService 从学校论坛数据库导出帖子，生成情感分析的输入文件
type FetchService struct {
	db  *gorm.DB
	cfg *config.AnalysisConfig
}

func NewFetchService(db *gorm.DB, cfg *config.AnalysisConfig) *FetchService {
	return &FetchService{
		db:  db,
		cfg: cfg,
	}
}

// FetchToExcel 分批读取 tbl_school_post 全表，写入输入 Excel 文件
func (s *FetchService) FetchToExcel(ctx context.Context, batchSize int) error {
	if s.db == nil {
		return fmt.Errorf("MySQL 连接未初始化")
	}

	if err := os.MkdirAll(filepath.Dir(s.cfg.InputPath), 0755); err != nil {
		return fmt.Errorf("创建数据目录失败: %v", err)
	}

	startTime := time.Now()
	table := &excel.Table{Records: make([]model.Record, 0)}
	offset := 0

	for {
		var posts []model.Post
		err := s.db.WithContext(ctx).
			Order("id").
			Limit(batchSize).
			Offset(offset).
			Find(&posts).Error
		if err != nil {
			return fmt.Errorf("查询帖子失败: %v", err)
		}
		if len(posts) == 0 {
			break
		}

		for _, post := range posts {
			id := int(post.ID)
			table.Append(model.Record{
				ID:      &id,
				Title:   post.Title,
				Body:    post.Body,
				Vote:    cast.ToString(post.Vote),
				Comment: post.Comment,
			})
		}

		offset += batchSize
	}

	if err := excel.SaveTable(s.cfg.InputPath, table); err != nil {
		return fmt.Errorf("写入输入文件失败: %v", err)
	}

	zap.S().Infof("导出完成: 共 %d 条帖子写入 '%s'", len(table.Records), s.cfg.InputPath)
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return nil
}
