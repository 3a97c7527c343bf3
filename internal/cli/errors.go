package cli

import (
	"errors"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/pushover"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrMissingCredential는 token 또는 user를 결정할 수 없을 때의 sentinel error다.
	ErrMissingCredential = config.ErrMissingCredential
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrInvalidPriority는 네트워크 호출 전에 거부된 우선순위 값이다.
	ErrInvalidPriority = pushover.ErrInvalidPriority
)

// ErrNotDelivered는 provider가 알림을 수락하지 않았거나 연결에 실패했을 때의 sentinel error다.
var ErrNotDelivered = errors.New("notification not delivered")

// ErrChecksFailed는 doctor 진단 중 하나 이상이 FAIL일 때의 sentinel error다.
var ErrChecksFailed = errors.New("one or more checks failed")
