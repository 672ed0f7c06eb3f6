package fs

import (
	"fmt"
)

type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}
