package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mvalencia/inventario-textil/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotter struct {
	lastDest string
	err      error
}

func (f *fakeSnapshotter) Snapshot(_ context.Context, destPath string) (string, error) {
	f.lastDest = destPath
	if f.err != nil {
		return "", f.err
	}
	return destPath, nil
}

func TestBackup_RutaExplicita(t *testing.T) {
	snap := &fakeSnapshotter{}
	uc := usecase.NewBackupUseCase(snap, "datos")

	out, err := uc.Run(context.Background(), "/tmp/respaldo.json")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/respaldo.json", out.Path)
	assert.Equal(t, "/tmp/respaldo.json", snap.lastDest)
}

func TestBackup_RutaVaciaGeneraNombreConTimestamp(t *testing.T) {
	snap := &fakeSnapshotter{}
	uc := usecase.NewBackupUseCase(snap, "datos")

	out, err := uc.Run(context.Background(), "   ")
	require.NoError(t, err)

	dir, name := filepath.Split(out.Path)
	assert.Equal(t, "datos", filepath.Clean(dir), "sin ruta explícita se usa el directorio configurado")
	assert.Regexp(t, `^respaldo_inventario_\d{8}_\d{6}\.json$`, name)
}
