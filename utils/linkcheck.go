package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// URLReachable probes an external URL (thumbnail, video) with a HEAD
// request so instructors find out about dead links at authoring time
// instead of students finding out at viewing time.
func URLReachable(url string) bool {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		log.Printf("Link check failed for %s: %v", url, err)
		return false
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Link check for %s returned status %d", url, resp.StatusCode())
		return false
	}
	return true
}
