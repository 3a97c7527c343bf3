package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pushover-cli/internal/config"
)

// Name은 지원하는 셸 종류다.
type Name string

const (
	Bash Name = "bash"
	Zsh  Name = "zsh"
	Fish Name = "fish"
)

// ParseName은 셸 이름 또는 경로(/usr/bin/zsh)를 Name으로 변환한다.
// 인식하지 못하는 셸은 Bash로 간주한다.
func ParseName(s string) Name {
	switch Name(filepath.Base(s)) {
	case Zsh:
		return Zsh
	case Fish:
		return Fish
	default:
		return Bash
	}
}

// candidates는 셸별 startup 파일 후보 목록이다 (홈 디렉토리 기준, 우선순위 순).
func candidates(sh Name) []string {
	switch sh {
	case Zsh:
		return []string{".zshrc", ".zprofile"}
	case Fish:
		return []string{filepath.Join(".config", "fish", "config.fish")}
	default:
		return []string{".bashrc", ".bash_profile"}
	}
}

// Exports는 자격 증명을 설정하는 셸 구문을 생성한다.
func Exports(creds config.Credentials, sh Name) string {
	format := "export %s=%s\nexport %s=%s\n"
	if sh == Fish {
		format = "set -gx %s %s\nset -gx %s %s\n"
	}
	return fmt.Sprintf(format,
		config.KeyToken, Quote(creds.Token, sh),
		config.KeyUser, Quote(creds.User, sh),
	)
}

// Quote는 s를 셸의 큰따옴표 문자열로 감싼다.
// bash/zsh는 \ " $ `를, fish는 \ " $를 escape한다. 나머지 문자는 그대로 둔다.
func Quote(s string, sh Name) string {
	special := "\\\"$`"
	if sh == Fish {
		special = "\\\"$"
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// Unsets는 현재 세션에서 자격 증명을 제거하는 셸 구문을 생성한다.
func Unsets(sh Name) string {
	switch sh {
	case Fish:
		return fmt.Sprintf("set -e %s\nset -e %s\n", config.KeyToken, config.KeyUser)
	default:
		return fmt.Sprintf("unset %s\nunset %s\n", config.KeyToken, config.KeyUser)
	}
}

// SourceHint는 현재 세션에 설정을 반영하는 명령이다.
func SourceHint(profilePath string) string {
	return "source " + profilePath
}
