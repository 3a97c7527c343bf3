package doctor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/shell"
	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckEnvCredentials는 환경변수 자격 증명을 확인한다.
func CheckEnvCredentials(env sysenv.Env) []DiagResult {
	var results []DiagResult
	for _, key := range []string{config.KeyToken, config.KeyUser} {
		if env.Getenv(key) != "" {
			results = append(results, DiagResult{
				Name:    key,
				Status:  StatusOK,
				Message: "set in environment",
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    key,
			Status:  StatusWarn,
			Message: "not set in environment",
			Fix:     "run pushover config set, then open a new shell",
		})
	}
	return results
}

// CheckConfigFile은 설정 파일 존재 여부, 파싱 가능 여부, 권한을 확인한다.
// 설정 파일은 선택 사항이므로 없으면 OK다.
func CheckConfigFile(path string) DiagResult {
	name := "config_file"
	values, err := config.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DiagResult{Name: name, Status: StatusOK, Message: fmt.Sprintf("%s not present (optional)", path)}
	}
	if err != nil {
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("check that %s uses KEY=VALUE lines", path),
		}
	}
	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    name,
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{
		Name:    name,
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%d keys)", path, len(values)),
	}
}

// CheckProfileBlock은 셸 startup 파일에 Pushover 블록이 설치되어 있는지 확인한다.
func CheckProfileBlock(m *shell.Manager, sh shell.Name) DiagResult {
	name := "shell_profile"
	path, err := m.ProfilePath(sh)
	if err != nil {
		return DiagResult{Name: name, Status: StatusFail, Message: err.Error()}
	}
	ok, err := m.HasBlock(sh)
	if err != nil {
		return DiagResult{Name: name, Status: StatusFail, Message: err.Error()}
	}
	if !ok {
		return DiagResult{
			Name:    name,
			Status:  StatusWarn,
			Message: fmt.Sprintf("no Pushover block in %s", path),
			Fix:     "pushover config set",
		}
	}
	return DiagResult{Name: name, Status: StatusOK, Message: fmt.Sprintf("Pushover block installed in %s", path)}
}

// CheckResolvable는 send 경로와 같은 우선순위로 자격 증명을 결정할 수 있는지 확인한다.
func CheckResolvable(env sysenv.Env, file config.Values) DiagResult {
	name := "credentials"
	if _, err := config.Resolve(config.Credentials{}, env, file); err != nil {
		var missing *config.MissingCredentialError
		msg := err.Error()
		if errors.As(err, &missing) {
			msg = fmt.Sprintf("%s could not be resolved", missing.Field)
		}
		return DiagResult{Name: name, Status: StatusFail, Message: msg, Fix: "pushover config set"}
	}
	return DiagResult{Name: name, Status: StatusOK, Message: "token and user resolved"}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(env sysenv.Env, m *shell.Manager, sh shell.Name, configPath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckEnvCredentials(env)...)
	results = append(results, CheckConfigFile(configPath))
	results = append(results, CheckProfileBlock(m, sh))
	results = append(results, CheckResolvable(env, config.Load(configPath)))
	return results
}

// HasFailure는 결과 중 FAIL이 있는지 확인한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
