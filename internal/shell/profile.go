package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/logging"
	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// Manager는 셸 startup 파일의 Pushover 블록을 관리한다.
// 읽기-수정-쓰기는 원자적이지 않으며 동시 실행에 대한 잠금도 없다.
type Manager struct {
	Env sysenv.Env
}

// NewManager는 env를 사용하는 Manager를 생성한다.
func NewManager(env sysenv.Env) *Manager {
	return &Manager{Env: env}
}

// ClearResult는 Clear의 결과다.
type ClearResult struct {
	// Path는 대상 startup 파일 경로다.
	Path string
	// Existed는 startup 파일이 존재했는지 여부다.
	Existed bool
	// Removed는 블록을 찾아 제거했는지 여부다.
	Removed bool
}

// DetectShell은 $SHELL의 마지막 경로 요소로 현재 셸을 감지한다.
func (m *Manager) DetectShell() Name {
	return ParseName(m.Env.Getenv("SHELL"))
}

// resolve는 빈 셸 이름을 감지된 셸로 대체한다.
func (m *Manager) resolve(sh Name) Name {
	if sh == "" {
		return m.DetectShell()
	}
	return ParseName(string(sh))
}

// ProfilePath는 셸의 startup 파일 경로를 반환한다.
// 후보 중 이미 존재하는 첫 파일을, 없으면 첫 후보를 반환한다.
func (m *Manager) ProfilePath(sh Name) (string, error) {
	home, err := m.Env.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("shell.ProfilePath: %w", err)
	}
	names := candidates(m.resolve(sh))
	for _, name := range names {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return filepath.Join(home, names[0]), nil
}

// Persist는 자격 증명 블록을 startup 파일에 기록한다.
// 기존 블록이 있으면 제거한 뒤 파일 끝에 새 블록을 추가한다. 기록한 파일 경로를 반환한다.
func (m *Manager) Persist(creds config.Credentials, sh Name) (string, error) {
	sh = m.resolve(sh)
	path, err := m.ProfilePath(sh)
	if err != nil {
		return "", fmt.Errorf("shell.Persist: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("shell.Persist: %w", err)
	}

	content := upsertBlock(string(existing), Exports(creds, sh))

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("shell.Persist: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("shell.Persist: %w", err)
	}

	logging.Get().Debug().Str("shell", string(sh)).Str("path", path).Msg("profile block written")
	return path, nil
}

// Clear는 startup 파일에서 블록을 제거한다.
// 파일이 없거나 블록이 없으면 아무것도 쓰지 않고 성공한다.
func (m *Manager) Clear(sh Name) (ClearResult, error) {
	path, err := m.ProfilePath(sh)
	if err != nil {
		return ClearResult{}, fmt.Errorf("shell.Clear: %w", err)
	}
	result := ClearResult{Path: path}

	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("shell.Clear: %w", err)
	}
	result.Existed = true

	content, found := stripBlock(string(existing))
	if !found {
		return result, nil
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return result, fmt.Errorf("shell.Clear: %w", err)
	}
	result.Removed = true

	logging.Get().Debug().Str("path", path).Msg("profile block removed")
	return result, nil
}

// HasBlock은 startup 파일에 블록이 설치되어 있는지 확인한다. 파일이 없으면 false다.
func (m *Manager) HasBlock(sh Name) (bool, error) {
	path, err := m.ProfilePath(sh)
	if err != nil {
		return false, fmt.Errorf("shell.HasBlock: %w", err)
	}
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("shell.HasBlock: %w", err)
	}
	return hasBlock(string(existing)), nil
}
