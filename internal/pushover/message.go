// Package pushover sends a single notification to the Pushover messages API.
package pushover

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hbjs97/pushover-cli/internal/config"
)

// 우선순위 범위다.
const (
	PriorityLowest    = -2
	PriorityLow       = -1
	PriorityNormal    = 0
	PriorityHigh      = 1
	PriorityEmergency = 2
)

// ErrInvalidPriority는 우선순위가 [-2, 2] 범위를 벗어났을 때의 sentinel error다.
var ErrInvalidPriority = errors.New("priority must be one of -2, -1, 0, 1, 2")

// ErrEmptyMessage는 메시지 본문이 비어 있을 때의 sentinel error다.
var ErrEmptyMessage = errors.New("message is required")

// Request는 전송할 알림 하나다. 빈 선택 필드는 폼에 포함되지 않는다.
type Request struct {
	Message  string
	Title    string
	Priority int
	URL      string
	URLTitle string
	Device   string
	Sound    string
}

// Validate는 네트워크 호출 전에 요청을 검증한다.
func (r Request) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("pushover.Validate: %w", ErrEmptyMessage)
	}
	if err := ValidatePriority(r.Priority); err != nil {
		return fmt.Errorf("pushover.Validate: %w", err)
	}
	return nil
}

// ValidatePriority는 p가 허용된 우선순위인지 확인한다.
func ValidatePriority(p int) error {
	if p < PriorityLowest || p > PriorityEmergency {
		return fmt.Errorf("%w (got %d)", ErrInvalidPriority, p)
	}
	return nil
}

// Form은 요청을 application/x-www-form-urlencoded 본문 필드로 변환한다.
func (r Request) Form(creds config.Credentials) url.Values {
	form := url.Values{}
	form.Set("token", creds.Token)
	form.Set("user", creds.User)
	form.Set("message", r.Message)
	form.Set("priority", strconv.Itoa(r.Priority))

	optional := []struct {
		key   string
		value string
	}{
		{"title", r.Title},
		{"url", r.URL},
		{"url_title", r.URLTitle},
		{"device", r.Device},
		{"sound", r.Sound},
	}
	for _, o := range optional {
		if o.value != "" {
			form.Set(o.key, o.value)
		}
	}
	return form
}

// Result는 전송 결과다. 재시도 상태는 없다.
type Result struct {
	Delivered bool
	Detail    string
	// RequestID는 provider가 응답에 포함한 request 식별자다 (있을 때만).
	RequestID string
}
