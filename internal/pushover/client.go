package pushover

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/logging"
)

// DefaultEndpoint는 Pushover 메시지 전송 API 주소다.
const DefaultEndpoint = "https://api.pushover.net:443/1/messages.json"

// DeliveredDetail은 전송 성공 시 Result.Detail 값이다.
const DeliveredDetail = "notification sent successfully"

// Version은 User-Agent에 포함되는 버전이다.
const Version = "1.0.0"

const unknownError = "unknown error"

// Client는 Pushover API에 단일 POST를 보내는 클라이언트다.
type Client struct {
	// Endpoint는 POST 대상 URL이다. 비어있으면 DefaultEndpoint.
	Endpoint string
	// HTTPClient는 비어있으면 timeout 없는 기본 클라이언트를 사용한다.
	HTTPClient *http.Client
}

// New는 기본 endpoint를 사용하는 Client를 생성한다.
func New() *Client {
	return &Client{Endpoint: DefaultEndpoint, HTTPClient: &http.Client{}}
}

type apiResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors"`
}

// Send는 알림을 한 번 전송한다. 재시도하지 않는다.
// 전송 실패는 에러가 아니라 Delivered=false인 Result로 보고된다.
func (c *Client) Send(ctx context.Context, creds config.Credentials, req Request) Result {
	if err := req.Validate(); err != nil {
		return Result{Detail: "invalid request: " + err.Error()}
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpc := c.HTTPClient
	if httpc == nil {
		httpc = &http.Client{}
	}

	body := req.Form(creds).Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return Result{Detail: "connection error: " + err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", "pushover-cli/"+Version)

	log := logging.Get()
	log.Debug().Str("endpoint", endpoint).Int("priority", req.Priority).Msg("sending notification")

	resp, err := httpc.Do(httpReq)
	if err != nil {
		return Result{Detail: "connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Detail: "connection error: " + err.Error()}
	}
	log.Debug().Int("status_code", resp.StatusCode).Msg("provider responded")

	return interpret(resp.StatusCode, data)
}

// interpret는 HTTP 상태 코드와 응답 본문을 Result로 변환한다.
// 본문이 JSON이 아니면 errors 없이 실패로 처리한다.
func interpret(statusCode int, data []byte) Result {
	var parsed apiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		logging.Get().Debug().Err(err).Msg("malformed provider response")
		return Result{Detail: sendError(nil)}
	}

	if statusCode == http.StatusOK && parsed.Status == 1 {
		return Result{Delivered: true, Detail: DeliveredDetail, RequestID: parsed.Request}
	}
	return Result{Detail: sendError(parsed.Errors), RequestID: parsed.Request}
}

func sendError(errs []string) string {
	if len(errs) == 0 {
		errs = []string{unknownError}
	}
	return fmt.Sprintf("send error: %s", strings.Join(errs, ", "))
}
