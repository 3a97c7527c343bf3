package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/hbjs97/pushover-cli/internal/logging"
	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// ReadFile은 설정 파일을 엄격하게 읽는다.
// 파일이 없으면 fs.ErrNotExist를 감싼 에러를, 읽기/파싱 실패 시 ErrConfig를 감싼 에러를 반환한다.
// 확장자가 .toml이면 TOML로, 그 외에는 KEY=VALUE 형식으로 해석한다.
func ReadFile(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.ReadFile: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("config.ReadFile: %w: %w", ErrConfig, err)
	}
	if isTOML(path) {
		return decodeTOML(data)
	}
	return parseLines(data)
}

// Load는 설정 파일을 best-effort로 읽는다. 파일 없음/읽기 실패/파싱 실패 시 빈 매핑을 반환한다.
func Load(path string) Values {
	v, err := ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Get().Debug().Err(err).Str("path", path).Msg("config file ignored")
		}
		return Values{}
	}
	return v
}

// Save는 values를 설정 파일로 저장한다 (0600 권한). 기존 주석은 보존되지 않는다.
func Save(path string, values Values) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(map[string]string(values)); err != nil {
			return fmt.Errorf("config.Save: %w: %w", ErrConfig, err)
		}
		data = buf.Bytes()
	} else {
		content, err := marshalLines(values)
		if err != nil {
			return fmt.Errorf("config.Save: %w: %w", ErrConfig, err)
		}
		data = []byte(content)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// Update는 기존 설정 파일에 updates를 병합하여 다시 쓴다. 빈 값은 무시한다.
func Update(path string, updates Values) error {
	current, err := ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if current == nil {
		current = Values{}
	}
	for k, v := range updates {
		if v != "" {
			current[k] = v
		}
	}
	return Save(path, current)
}

// ExpandPath는 선행 ~를 env의 홈 디렉토리로 확장한다.
func ExpandPath(path string, env sysenv.Env) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := env.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config.ExpandPath: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// parseLines는 KEY=VALUE 줄을 파싱한다.
// 빈 줄, #로 시작하는 줄, =가 없는 줄은 건너뛴다.
func parseLines(data []byte) (Values, error) {
	values := Values{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config.ReadFile: %w: %w", ErrConfig, err)
	}
	return values, nil
}

// marshalLines는 values를 키 순서대로 KEY=VALUE 줄로 만든다.
// godotenv.Marshal은 정수로 해석되는 값을 %d로 다시 써서 0012345, +42 같은 값이 바뀌므로
// 그런 값은 따옴표 없이 원문 그대로 쓴다.
func marshalLines(values Values) (string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := values[k]
		if _, err := strconv.Atoi(v); err == nil {
			fmt.Fprintf(&b, "%s=%s\n", k, v)
			continue
		}
		line, err := godotenv.Marshal(map[string]string{k: v})
		if err != nil {
			return "", err
		}
		b.WriteString(line + "\n")
	}
	return b.String(), nil
}

// dotenvUnescaper는 godotenv.Marshal의 escape 중 Go 문자열 문법에 없는 \!, \$, \`를 되돌린다.
var dotenvUnescaper = strings.NewReplacer(`\\`, `\\`, `\!`, `!`, `\$`, `$`, "\\`", "`")

// unquote는 "value" 형식의 큰따옴표를 벗긴다. 해석 불가하면 원문을 유지한다.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	if u, err := strconv.Unquote(dotenvUnescaper.Replace(s)); err == nil {
		return u
	}
	return s
}

func decodeTOML(data []byte) (Values, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("config.ReadFile: %w: %w", ErrConfig, err)
	}
	values := Values{}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			values[k] = strings.TrimSpace(s)
		}
	}
	return values, nil
}
