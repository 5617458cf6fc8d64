package fontload

import (
	"fmt"
	"io/fs"
)

// NotFoundError reports a descriptor whose path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("字体文件不存在: %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// ReadError reports a path that exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	cause := "未知错误"
	if e.Err != nil {
		cause = e.Err.Error()
	}
	return fmt.Sprintf("读取字体文件 %s 失败: %s", e.Path, cause)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FatalError is the panic value raised when a trusted font cannot be
// registered: an embedded asset is missing or the context rejected the
// bytes. It is never returned as an ordinary error.
type FatalError struct {
	Name string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("无法注册字体 %s: %v", e.Name, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }
