package config

import (
	"errors"
	"fmt"

	"github.com/hbjs97/pushover-cli/internal/logging"
	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// ErrMissingCredential는 token 또는 user를 어느 경로로도 얻지 못했을 때의 sentinel error다.
var ErrMissingCredential = errors.New("missing credential")

// Field는 누락된 자격 증명 항목이다.
type Field string

const (
	FieldToken Field = "token"
	FieldUser  Field = "user"
)

// MissingCredentialError는 누락된 항목과 설정 방법을 담는다.
type MissingCredentialError struct {
	Field Field
}

func (e *MissingCredentialError) Error() string {
	flag, key := "-t/--token", KeyToken
	if e.Field == FieldUser {
		flag, key = "-u/--user", KeyUser
	}
	return fmt.Sprintf("pushover %s is not set\n"+
		"  supply it with one of:\n"+
		"    pushover config set    persist it in your shell profile (recommended)\n"+
		"    %-22s pass it for this invocation\n"+
		"    %-22s export it manually or add it to %s",
		e.Field, flag, key, DefaultPath)
}

// Is는 errors.Is(err, ErrMissingCredential)을 지원한다.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// Source는 자격 증명 값을 얻은 위치다.
type Source string

const (
	SourceFlag Source = "flag"
	SourceEnv  Source = "env"
	SourceFile Source = "file"
	SourceNone Source = "none"
)

// Resolve는 flag > 환경변수 > 설정 파일 순서로 token과 user를 각각 결정한다.
// 상위 단계의 빈 값은 다음 단계로 넘어간다.
func Resolve(explicit Credentials, env sysenv.Env, file Values) (Credentials, error) {
	token, tokenSrc := pick(explicit.Token, env.Getenv(KeyToken), file.Get(KeyToken))
	user, userSrc := pick(explicit.User, env.Getenv(KeyUser), file.Get(KeyUser))

	logging.Get().Debug().
		Str("token_source", string(tokenSrc)).
		Str("user_source", string(userSrc)).
		Msg("credentials resolved")

	if token == "" {
		return Credentials{}, &MissingCredentialError{Field: FieldToken}
	}
	if user == "" {
		return Credentials{}, &MissingCredentialError{Field: FieldUser}
	}
	return Credentials{Token: token, User: user}, nil
}

func pick(flag, env, file string) (string, Source) {
	switch {
	case flag != "":
		return flag, SourceFlag
	case env != "":
		return env, SourceEnv
	case file != "":
		return file, SourceFile
	default:
		return "", SourceNone
	}
}
