package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"eplotdb/internal/posts"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckContentDirectory verifies that the posts directory is readable and
// reports how many posts it holds. With sync enabled a missing directory only
// means the repository has not been cloned yet.
func CheckContentDirectory(name, path string, sync bool) Result {
	if sync {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first sync)", path)}
		}
	}
	result := checkDirectory(name, path, unix.R_OK|unix.X_OK, "readable")
	if !result.Passed {
		return result
	}
	files, err := posts.Enumerate(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if len(files) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no %s files)", path, posts.Extension)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d posts)", path, len(files))}
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}
