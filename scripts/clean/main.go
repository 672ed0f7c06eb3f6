// Package main provides a script to clean up build and test artefacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// artefacts lists glob patterns for everything the build, test and watch workflows leave behind.
var artefacts = []string{
	"bin", "dist",
	".curvecheck.log",
	"coverage*", "*.out", "*.test", "*.coverprofile", "profile.cov",
}

func main() {
	for _, pattern := range artefacts {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			_, _ = fmt.Printf("❌ Failed to glob pattern %s: %v\n", pattern, err)
			continue
		}
		for _, match := range matches {
			if rErr := os.RemoveAll(match); rErr != nil {
				_, _ = fmt.Printf("❌ Failed to remove %s: %v\n", match, rErr)
			} else {
				_, _ = fmt.Printf("✅ Removed %s\n", match)
			}
		}
	}
}
