package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaveStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "janitor.status")
	end := time.Now()
	stats := RunStats{
		StartTime:    end.Add(-3 * time.Second),
		EndTime:      end,
		FilesRemoved: 5,
		SpaceFreed:   3 * 1024 * 1024,
	}

	require.NoError(t, SaveStats(path, stats))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "删除文件数: 5")
	require.Contains(t, string(data), "释放空间: 3.00 MB")
}
