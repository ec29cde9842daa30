//go:build js

package main

import (
	"strings"
	"syscall/js"
)

func urlFragment() string {
	hash := js.Global().Get("location").Get("hash")
	if hash.Type() != js.TypeString {
		return ""
	}
	return strings.TrimPrefix(hash.String(), "#")
}
