package shell

import (
	"strings"
)

// 관리 블록의 시작/끝 마커 줄이다.
const (
	StartMarker = "# === Pushover CLI Configuration - Start ==="
	EndMarker   = "# === Pushover CLI Configuration - End ==="
)

// splitLines는 내용을 줄 단위로 나눈다. 마지막 개행 뒤의 빈 조각은 버린다.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// removeBlocks는 시작~끝 마커 쌍으로 둘러싸인 범위를 (마커 포함) 모두 제거한다.
// 끝 마커가 없는 시작 마커나 짝 없는 끝 마커는 그대로 남긴다.
func removeBlocks(lines []string) ([]string, bool) {
	out := append([]string(nil), lines...)
	found := false
	for {
		start, end := -1, -1
		for i, line := range out {
			switch strings.TrimSpace(line) {
			case StartMarker:
				start = i
			case EndMarker:
				if start >= 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			return out, found
		}
		out = append(out[:start], out[end+1:]...)
		found = true
	}
}

// trimTrailingBlank는 끝의 빈 줄을 제거한다.
func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// renderBlock은 마커로 감싼 블록 줄 목록을 만든다.
func renderBlock(body string) []string {
	lines := []string{StartMarker}
	lines = append(lines, splitLines(body)...)
	return append(lines, EndMarker)
}

// joinLines는 줄 목록을 개행으로 끝나는 내용으로 합친다. 빈 목록은 빈 문자열이다.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// upsertBlock은 기존 블록을 모두 제거하고 새 블록을 파일 끝에 추가한다.
func upsertBlock(content, body string) string {
	lines, _ := removeBlocks(splitLines(content))
	lines = trimTrailingBlank(lines)
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return joinLines(append(lines, renderBlock(body)...))
}

// stripBlock은 블록을 제거한 내용과 블록 존재 여부를 반환한다.
func stripBlock(content string) (string, bool) {
	lines, found := removeBlocks(splitLines(content))
	if !found {
		return content, false
	}
	return joinLines(trimTrailingBlank(lines)), true
}

// hasBlock은 완전한 마커 쌍이 존재하는지 확인한다.
func hasBlock(content string) bool {
	_, found := removeBlocks(splitLines(content))
	return found
}
