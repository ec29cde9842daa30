//go:build !js

package main

func urlFragment() string {
	return ""
}
