package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/daily_agenda/internal/logger"
)

func newTestApp(t *testing.T, locale string) (*App, string) {
	t.Helper()
	logger.SetOutput(new(bytes.Buffer), zerolog.InfoLevel)
	t.Cleanup(func() { logger.SetOutput(os.Stderr, zerolog.InfoLevel) })

	out := filepath.Join(t.TempDir(), "day.xlsx")
	app := NewApp()
	app.Config.OUTPUT_FILE_PATH = out
	app.Config.AGENDA_LOCALE = locale
	app.Now = func() time.Time { return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC) }
	return app, out
}

func readCell(t *testing.T, path, sheet, cell string) string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestRunWritesAgenda(t *testing.T) {
	app, out := newTestApp(t, "en")
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Daily Task Tracker Agenda - 15.03.2024", readCell(t, out, "Daily Agenda", "A1"))
	assert.Equal(t, "18:00", readCell(t, out, "Daily Agenda", "A23"))
	assert.Equal(t, "© Daily Task Tracker Agenda", readCell(t, out, "Daily Agenda", "A24"))
}

func TestRunOverwritesExistingFile(t *testing.T) {
	app, out := newTestApp(t, "tr")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "Günlük İş Takip Ajandası - 15.03.2024", readCell(t, out, "Günlük Ajanda", "A1"))
}

func TestRunFailsOnUnwritablePath(t *testing.T) {
	app, _ := newTestApp(t, "en")
	app.Config.OUTPUT_FILE_PATH = filepath.Join(t.TempDir(), "missing", "dir", "day.xlsx")

	assert.Error(t, app.Run(context.Background()))
}

func TestRunFailsOnUnknownLocale(t *testing.T) {
	app, out := newTestApp(t, "xx")

	assert.Error(t, app.Run(context.Background()))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
