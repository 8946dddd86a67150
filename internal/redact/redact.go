// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package redact strips credentials from strings before they reach the
// terminal, logs, or the error panel.
package redact

import (
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variables whose values must never be
// displayed. Register adds the variable configured by token_env.
var sensitiveEnvVars = []string{
	"ICUDASH_TOKEN",
}

var (
	mu            sync.Mutex
	cachedSecrets []string
	cacheOnce     sync.Once
)

// userinfoRe matches the user:password@ part of an http(s) URL.
var userinfoRe = regexp.MustCompile(`(https?://)[^/@\s]+@`)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// Register adds envVar to the list of redacted variables.
func Register(envVar string) {
	mu.Lock()
	defer mu.Unlock()
	for _, v := range sensitiveEnvVars {
		if v == envVar {
			return
		}
	}
	sensitiveEnvVars = append(sensitiveEnvVars, envVar)
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest drops the cached secrets so tests can change env vars with
// t.Setenv between calls.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces secret env var values with "[REDACTED]" and strips URL
// userinfo.
func String(s string) string {
	mu.Lock()
	cacheOnce.Do(loadSecrets)
	secrets := cachedSecrets
	mu.Unlock()

	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return userinfoRe.ReplaceAllString(s, "${1}[REDACTED]@")
}

// URL returns raw with any userinfo removed, for logging endpoints.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return String(raw)
	}
	u.User = nil
	return String(u.String())
}
