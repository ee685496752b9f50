package deploy

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"gopkg.in/yaml.v3"

	"github.com/LubyRuffy/easymaas/logger"
)

// RecordDirName 部署记录所在的隐藏目录名。
const RecordDirName = ".easymaas"

// ServiceInfo 记录部署内单个服务的来源。
type ServiceInfo struct {
	Model    string `yaml:"model_name"`
	Function string `yaml:"function_name"`
	File     string `yaml:"file_path"`
}

// Deployment 是一次 start 的持久化记录,服务端退出时删除。
type Deployment struct {
	ServicesDir string        `yaml:"services_dir"`
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	PID         int           `yaml:"pid"`
	StartTime   time.Time     `yaml:"start_time"`
	Services    []ServiceInfo `yaml:"services"`
}

// Uptime 返回启动至今的时长。
func (d *Deployment) Uptime() time.Duration {
	return time.Since(d.StartTime)
}

// Alive 报告记录中的进程是否仍然存活。
func (d *Deployment) Alive() bool {
	ok, err := process.PidExists(int32(d.PID))
	return err == nil && ok
}

// Manager 管理部署记录文件。同一服务目录的记录互相覆盖,
// 不同目录的记录可以并存。
type Manager struct {
	dir string
}

// NewManager 在 base 下创建(或复用)记录目录。
func NewManager(base string) (*Manager, error) {
	dir := filepath.Join(base, RecordDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// recordPath 以服务目录绝对路径的摘要命名记录文件。
func (m *Manager) recordPath(servicesDir string) (string, error) {
	abs, err := filepath.Abs(servicesDir)
	if err != nil {
		return "", fmt.Errorf("resolve services dir: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(abs))
	return filepath.Join(m.dir, fmt.Sprintf("deployment_%d.yaml", h.Sum64())), nil
}

// Save 写入部署记录。
func (m *Manager) Save(d Deployment) error {
	path, err := m.recordPath(d.ServicesDir)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal deployment: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write deployment: %w", err)
	}
	return nil
}

// Load 读取某个服务目录的部署记录,没有记录时返回 (nil, nil)。
func (m *Manager) Load(servicesDir string) (*Deployment, error) {
	path, err := m.recordPath(servicesDir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read deployment: %w", err)
	}
	var d Deployment
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deployment: %w", err)
	}
	return &d, nil
}

// Delete 移除某个服务目录的部署记录。记录不存在不算错误。
func (m *Manager) Delete(servicesDir string) error {
	path, err := m.recordPath(servicesDir)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove deployment: %w", err)
	}
	return nil
}

// List 返回全部部署记录。解析不了的记录文件当场删除。
func (m *Manager) List() ([]*Deployment, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read record dir: %w", err)
	}

	var deployments []*Deployment
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "deployment_") || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		path := filepath.Join(m.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warnf("read deployment record %s failed: %v", name, err)
			continue
		}
		var d Deployment
		if err := yaml.Unmarshal(data, &d); err != nil {
			logger.Warnf("corrupted deployment record %s, removing", name)
			_ = os.Remove(path)
			continue
		}
		deployments = append(deployments, &d)
	}
	return deployments, nil
}

// CleanupDead 删除进程已经不在的部署记录,返回清掉的数量。
func (m *Manager) CleanupDead() (int, error) {
	deployments, err := m.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, d := range deployments {
		if d.Alive() {
			continue
		}
		if err := m.Delete(d.ServicesDir); err != nil {
			logger.Warnf("remove dead deployment of %s failed: %v", d.ServicesDir, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// FindByPort 返回占用指定端口的存活部署。
func (m *Manager) FindByPort(port int) (*Deployment, bool) {
	deployments, err := m.List()
	if err != nil {
		return nil, false
	}
	for _, d := range deployments {
		if d.Port == port && d.Alive() {
			return d, true
		}
	}
	return nil, false
}
