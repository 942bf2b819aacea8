package utils

import "time"

// StrOrEmpty dereferences optional string columns.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// TimeOrZero dereferences optional time columns.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
