package utils

import "os"

func Ptr[T any](v T) *T {
	return &v
}

// FileExists 判断路径是否存在且为普通文件
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
