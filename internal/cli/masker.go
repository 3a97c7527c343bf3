package cli

const maskVisible = 8

// MaskValue는 자격 증명 값의 앞 8글자만 남기고 "..."을 붙인다.
// 8글자 이하의 값은 그대로 반환한다.
func MaskValue(s string) string {
	r := []rune(s)
	if len(r) <= maskVisible {
		return s
	}
	return string(r[:maskVisible]) + "..."
}
