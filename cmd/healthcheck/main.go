package main

import (
	"net/http"
	"os"
	"time"
)

func main() {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://127.0.0.1:8080/api/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	// Any status below 500 means the process is serving requests.
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
