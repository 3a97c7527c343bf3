package cli

// ExitCode는 pushover의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitFailure는 자격 증명 누락, 전송 실패, 설정 오류 등 모든 실패다.
	ExitFailure ExitCode = 1
)

// MapExitCode는 에러를 종료 코드로 변환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
