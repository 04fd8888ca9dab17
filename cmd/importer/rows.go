package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/internal/model/dto"
	"github.com/qs3c/course_comment_server/internal/pkg/sentiment"
	"github.com/qs3c/course_comment_server/internal/service"
)

// Row CSV 中的一条评价
type Row struct {
	Line       int
	CourseName string
	Comment    string
}

// Summary 导入结果
type Summary struct {
	Imported int
	Skipped  int
	Failed   int
}

// Submitter 评价提交
type Submitter interface {
	Submit(ctx context.Context, req *dto.SubmitCommentRequest) (*dto.SubmitResult, error)
}

// readRows 读取带表头的 CSV，列顺序由表头决定
func readRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	courseIdx, commentIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "course_name":
			courseIdx = i
		case "comment":
			commentIdx = i
		}
	}
	if courseIdx < 0 || commentIdx < 0 {
		return nil, errors.New("header must contain course_name and comment")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		// 引号内换行时记录跨多行，取记录起始行
		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{
			Line:       line,
			CourseName: field(record, courseIdx),
			Comment:    field(record, commentIdx),
		})
	}

	return rows, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// scoreRow 仅打分不入库，校验规则与提交一致
func scoreRow(ctx context.Context, analyzer sentiment.Analyzer, row Row) (float64, error) {
	if row.CourseName == "" || row.Comment == "" {
		return 0, service.ErrInvalidComment
	}

	raw, err := analyzer.Score(ctx, row.Comment)
	if err != nil {
		return 0, err
	}
	if !sentiment.ValidScore(raw) {
		return 0, fmt.Errorf("%w: %v", sentiment.ErrScoreOutOfRange, raw)
	}
	return sentiment.Round4(raw), nil
}

// importRows 逐行提交，每行一次插入
func importRows(ctx context.Context, s Submitter, rows []Row, logger *zap.Logger) Summary {
	var summary Summary
	for _, row := range rows {
		_, err := s.Submit(ctx, &dto.SubmitCommentRequest{
			CourseName: row.CourseName,
			Comment:    row.Comment,
		})
		switch {
		case err == nil:
			summary.Imported++
		case errors.Is(err, service.ErrInvalidComment):
			summary.Skipped++
			logger.Warn("Skipping row", zap.Int("line", row.Line), zap.Error(err))
		default:
			summary.Failed++
			logger.Error("Failed to import row", zap.Int("line", row.Line), zap.Error(err))
		}
	}
	return summary
}
