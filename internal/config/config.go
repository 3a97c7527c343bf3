package config

import (
	"errors"
	"fmt"
	"os"
)

// 인식하는 설정 키와 환경변수 이름이다.
const (
	KeyToken = "PUSHOVER_TOKEN"
	KeyUser  = "PUSHOVER_USER"
)

// DefaultPath는 --config 플래그의 기본값이다. ~는 실행 시 홈 디렉토리로 확장된다.
const DefaultPath = "~/.pushover_config"

// ErrConfig는 설정 파일 읽기/파싱/쓰기 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// Credentials는 메시지 전송에 필요한 token/user 쌍이다.
type Credentials struct {
	Token string
	User  string
}

// Values는 설정 파일에서 읽은 KEY→VALUE 매핑이다.
type Values map[string]string

// Get은 key의 값을 반환한다. nil 매핑에서도 안전하다.
func (v Values) Get(key string) string {
	if v == nil {
		return ""
	}
	return v[key]
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s has mode %o (want 0600)", path, perm)
	}
	return nil
}
