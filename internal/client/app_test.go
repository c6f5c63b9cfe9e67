package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/mock"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/tui"
	"github.com/MKhiriev/heart-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func TestApp_RunLocksAndCloses(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit"},
		{name: "ctrl+c is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure is returned", uiErr: errors.New("no tty"), wantErr: errors.New("no tty")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			journal := mock.NewMockJournal(ctrl)
			journal.EXPECT().Lock(gomock.Any()).Return(nil)

			closed := false
			app := NewApp(journal, uiFunc(func(context.Context) error { return tt.uiErr }), func() error {
				closed = true
				return nil
			}, logger.Nop())

			err := app.Run()
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, closed)
		})
	}
}

func TestNewJournal_Local(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientConfig{
		KDFIterations: 1000,
		SlotName:      "client_test",
		StorageDSN:    "file:" + filepath.Join(t.TempDir(), "journal.json"),
	}

	journal, closer, err := NewJournal(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer closer()

	_, ok := journal.(service.JournalService)
	assert.True(t, ok, "local mode serves the journal in process")

	outcome, err := journal.CreateOrVerify(ctx, "rose123")
	require.NoError(t, err)
	assert.Equal(t, models.Established, outcome)
}

func TestNewJournal_CorruptLocalFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	journal, closer, err := NewJournal(ctx, config.ClientConfig{
		KDFIterations: 1000,
		SlotName:      "client_test",
		StorageDSN:    "file:" + path,
	}, logger.Nop())
	require.NoError(t, err)
	defer closer()

	established, err := journal.IsVaultEstablished(ctx)
	require.NoError(t, err)
	assert.False(t, established)

	outcome, err := journal.CreateOrVerify(ctx, "rose123")
	require.NoError(t, err)
	assert.Equal(t, models.Established, outcome)
}

func TestNewJournal_Remote(t *testing.T) {
	journal, closer, err := NewJournal(context.Background(), config.ClientConfig{RemoteAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, closer())

	_, ok := journal.(service.JournalService)
	assert.False(t, ok)
}

func TestNewJournal_BadDSN(t *testing.T) {
	_, _, err := NewJournal(context.Background(), config.ClientConfig{StorageDSN: "redis://nowhere"}, logger.Nop())
	assert.Error(t, err)
}
