package deploy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDeployment(servicesDir string, pid int) Deployment {
	return Deployment{
		ServicesDir: servicesDir,
		Host:        "0.0.0.0",
		Port:        8000,
		PID:         pid,
		StartTime:   time.Now(),
		Services: []ServiceInfo{
			{Model: "echo-v1", Function: "echo", File: filepath.Join(servicesDir, "echo.js")},
		},
	}
}

func TestManager_SaveLoadDelete(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base)
	require.NoError(t, err)

	want := testDeployment(filepath.Join(base, "services"), os.Getpid())
	require.NoError(t, m.Save(want))

	got, err := m.Load(want.ServicesDir)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want.ServicesDir, got.ServicesDir)
	require.Equal(t, want.Host, got.Host)
	require.Equal(t, want.Port, got.Port)
	require.Equal(t, want.PID, got.PID)
	require.WithinDuration(t, want.StartTime, got.StartTime, time.Second)
	require.Equal(t, want.Services, got.Services)

	require.NoError(t, m.Delete(want.ServicesDir))
	got, err = m.Load(want.ServicesDir)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestManager_LoadMissingIsNil(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	got, err := m.Load("never-saved")
	require.NoError(t, err)
	require.Nil(t, got)

	// 删除不存在的记录也不算错误。
	require.NoError(t, m.Delete("never-saved"))
}

func TestManager_RecordsKeyedByServicesDir(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base)
	require.NoError(t, err)

	first := testDeployment(filepath.Join(base, "a"), os.Getpid())
	second := testDeployment(filepath.Join(base, "b"), os.Getpid())
	second.Port = 8001
	require.NoError(t, m.Save(first))
	require.NoError(t, m.Save(second))

	deployments, err := m.List()
	require.NoError(t, err)
	require.Len(t, deployments, 2)

	// 同一目录的记录互相覆盖。
	first.Port = 9000
	require.NoError(t, m.Save(first))
	got, err := m.Load(first.ServicesDir)
	require.NoError(t, err)
	require.Equal(t, 9000, got.Port)

	deployments, err = m.List()
	require.NoError(t, err)
	require.Len(t, deployments, 2)
}

func TestManager_ListPrunesCorruptedRecords(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base)
	require.NoError(t, err)

	require.NoError(t, m.Save(testDeployment(filepath.Join(base, "services"), os.Getpid())))

	corrupted := filepath.Join(base, RecordDirName, "deployment_123.yaml")
	require.NoError(t, os.WriteFile(corrupted, []byte("{not yaml: ["), 0o644))

	deployments, err := m.List()
	require.NoError(t, err)
	require.Len(t, deployments, 1)

	_, err = os.Stat(corrupted)
	require.True(t, os.IsNotExist(err))
}

func TestManager_CleanupDead(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base)
	require.NoError(t, err)

	alive := testDeployment(filepath.Join(base, "alive"), os.Getpid())
	dead := testDeployment(filepath.Join(base, "dead"), 1<<31-1)
	require.NoError(t, m.Save(alive))
	require.NoError(t, m.Save(dead))

	removed, err := m.CleanupDead()
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	deployments, err := m.List()
	require.NoError(t, err)
	require.Len(t, deployments, 1)
	require.Equal(t, alive.ServicesDir, deployments[0].ServicesDir)
}

func TestManager_FindByPort(t *testing.T) {
	base := t.TempDir()
	m, err := NewManager(base)
	require.NoError(t, err)

	alive := testDeployment(filepath.Join(base, "alive"), os.Getpid())
	alive.Port = 8042
	dead := testDeployment(filepath.Join(base, "dead"), 1<<31-1)
	dead.Port = 8043
	require.NoError(t, m.Save(alive))
	require.NoError(t, m.Save(dead))

	got, ok := m.FindByPort(8042)
	require.True(t, ok)
	require.Equal(t, alive.ServicesDir, got.ServicesDir)

	// 进程已死的部署不算占用端口。
	_, ok = m.FindByPort(8043)
	require.False(t, ok)

	_, ok = m.FindByPort(1)
	require.False(t, ok)
}

func TestDeployment_Alive(t *testing.T) {
	d := Deployment{PID: os.Getpid()}
	require.True(t, d.Alive())

	d.PID = 1<<31 - 1
	require.False(t, d.Alive())
}
