package excel

import (
	"fmt"
	"strings"

	"emotion-analysis-log/pkg/model"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Table 表示一张内存中的记录表，持久化形态为单个 xlsx 文件
type Table struct {
	Records []model.Record
}

// NewResultTable 创建空的结果表
func NewResultTable() *Table {
	return &Table{Records: make([]model.Record, 0)}
}

// Append 追加一条记录
func (t *Table) Append(record model.Record) {
	t.Records = append(t.Records, record)
}

// ProcessedIDs 返回表中所有非空 id 的集合
func (t *Table) ProcessedIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(t.Records))
	for _, record := range t.Records {
		if record.ID != nil {
			ids[*record.ID] = struct{}{}
		}
	}
	return ids
}

// LoadTable 从 xlsx 文件读取记录表
// 按表头名称定位各列，输入文件的列顺序不限；缺少 body 列视为错误
func LoadTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开 Excel 文件(%s)失败: %v", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel 文件(%s)没有工作表", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Excel 文件(%s)缺少表头", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	if _, exists := columns["body"]; !exists {
		return nil, fmt.Errorf("Excel 文件(%s)中没有 'body' 列", path)
	}

	table := &Table{Records: make([]model.Record, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		record := model.Record{
			ID:      parseID(cellAt(row, columns, "id")),
			Title:   cellAt(row, columns, "title"),
			Body:    cellAt(row, columns, "body"),
			Vote:    cellAt(row, columns, "vote"),
			Comment: cellAt(row, columns, "comment"),
		}
		if result := cellAt(row, columns, "emotion_result"); result != "" {
			record.EmotionResult = &result
		}
		table.Append(record)
	}
	return table, nil
}

// SaveTable 将整张表按规范列顺序全量写入 xlsx 文件，覆盖旧文件
func SaveTable(path string, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(model.CanonicalColumns))
	for i, name := range model.CanonicalColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("写入表头失败: %v", err)
	}

	for i, record := range table.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			idCell(record.ID),
			record.Title,
			record.Body,
			record.Vote,
			record.Comment,
			resultCell(record.EmotionResult),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %v", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("保存 Excel 文件(%s)失败: %v", path, err)
	}
	return nil
}

// parseID 将 id 单元格转换为整数，空白或非法值返回 nil
func parseID(cell string) *int {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	id, err := cast.ToIntE(trimmed)
	if err != nil {
		return nil
	}
	return &id
}

func cellAt(row []string, columns map[string]int, name string) string {
	idx, exists := columns[name]
	if !exists || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func idCell(id *int) interface{} {
	if id == nil {
		return ""
	}
	return *id
}

func resultCell(result *string) interface{} {
	if result == nil {
		return ""
	}
	return *result
}
