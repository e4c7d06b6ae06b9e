package resolver

import (
	"strconv"
	"time"
)

// timeNowMilli is swapped in tests.
var timeNowMilli = func() int64 {
	return time.Now().UnixMilli()
}

func sampleLogID(i int) string {
	return "log-" + strconv.Itoa(i)
}
