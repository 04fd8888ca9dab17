package database

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/config"
	"github.com/qs3c/course_comment_server/internal/model"
)

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.db")

	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", Path: path}, false)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, EnsureSchema(db, zap.NewNop()))
	assert.True(t, db.Migrator().HasTable("course_comments"))
	for _, col := range []string{"id", "course_name", "comment", "score", "create_time"} {
		assert.True(t, db.Migrator().HasColumn(&model.Comment{}, col), "missing column %s", col)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.db")
	db, err := Open(&config.DatabaseConfig{Path: path}, false)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, EnsureSchema(db, zap.NewNop()))
	require.NoError(t, db.Create(&model.Comment{CourseName: "CS101", Comment: "ok", Score: 0.5}).Error)

	// 再次执行不应影响已有数据
	require.NoError(t, EnsureSchema(db, zap.NewNop()))

	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureSchema_DefaultCreateTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.db")
	db, err := Open(&config.DatabaseConfig{Path: path}, false)
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, EnsureSchema(db, zap.NewNop()))

	// 绕过 gorm 直接插入，验证存储层默认时间
	require.NoError(t, db.Exec(
		"INSERT INTO course_comments (course_name, comment, score) VALUES (?, ?, ?)",
		"CS101", "raw insert", 0.7,
	).Error)

	var c model.Comment
	require.NoError(t, db.First(&c).Error)
	assert.False(t, c.CreateTime.IsZero())
}

func TestOpen_CreateTimeStoredAsUTC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.db")
	db, err := Open(&config.DatabaseConfig{Path: path}, false)
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, EnsureSchema(db, zap.NewNop()))

	require.NoError(t, db.Create(&model.Comment{CourseName: "CS101", Comment: "ok", Score: 0.5}).Error)

	var raw string
	require.NoError(t, db.Raw("SELECT CAST(create_time AS TEXT) FROM course_comments").Scan(&raw).Error)
	assert.True(t, strings.HasSuffix(raw, "+00:00"), "stored create_time %q is not UTC", raw)

	var c model.Comment
	require.NoError(t, db.First(&c).Error)
	_, offset := c.CreateTime.Zone()
	assert.Equal(t, 0, offset)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, false)
	assert.Error(t, err)
}

func TestOpen_SQLiteMissingPath(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "sqlite"}, false)
	assert.Error(t, err)
}

func TestNewRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedis(&config.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	defer client.Close()
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(&config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
