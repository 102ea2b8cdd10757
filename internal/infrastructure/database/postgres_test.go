package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"", logger.Warn},
		{"warn", logger.Warn},
		{"nonsense", logger.Warn},
		{"silent", logger.Silent},
		{" ERROR ", logger.Error},
		{"info", logger.Info},
		{"debug", logger.Info},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LogLevel(tt.in), "level %q", tt.in)
	}
}

func TestOpen_PingsAndCloses(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectClose()

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), &config.DatabaseConfig{
		Name:     "meeting_actions",
		MaxConns: 4,
		MinConns: 1,
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, CloseDB(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_PingFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err = Open(postgres.New(postgres.Config{Conn: sqlDB}), &config.DatabaseConfig{LogLevel: "silent"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
}
