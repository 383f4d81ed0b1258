// utils/validation.go
package utils

import "time"

// ValidateDate checks that s is a well-formed calendar date (YYYY-MM-DD)
func ValidateDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateTime checks that s is a well-formed 24h time of day (HH:MM).
// An absent time is valid at the form level; callers treat "" separately.
func ValidateTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
