package infra

import "time"

func timeout() <-chan time.Time {
	return time.After(100 * time.Millisecond)
}
