package model

import (
	"time"

	"gorm.io/gorm"
)

// Post 表示 tbl_school_post 表，即情感分析的原始数据来源
type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"column:title" json:"title"`
	Body      string         `gorm:"column:body;type:text" json:"body"`
	Vote      int            `gorm:"column:vote" json:"vote"`
	Comment   string         `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "tbl_school_post"
}
