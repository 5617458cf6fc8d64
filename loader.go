package fontload

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path"
	"slices"
)

// LoadFonts registers fonts in order. See LoadFontSeq.
func LoadFonts(ctx Context, fonts ...FontDescriptor) error {
	return LoadFontSeq(ctx, slices.Values(fonts))
}

// LoadFontSeq reads each descriptor's file from disk and registers it with
// ctx as a new lowest-priority family named after the descriptor.
//
// Processing stops at the first descriptor that fails: a missing path yields
// *NotFoundError and any other failure to read yields *ReadError. Fonts
// registered before the failure stay registered. Repeated names are passed to
// ctx unchanged.
func LoadFontSeq(ctx Context, fonts iter.Seq[FontDescriptor]) error {
	for font := range fonts {
		data, err := readFont(font.Path, os.Stat, os.ReadFile)
		if err != nil {
			return err
		}
		ctx.AddFont(NewFontInsert(font.Name, data))
	}
	return nil
}

// LoadFontsFS is LoadFontSeq with paths resolved inside fsys.
func LoadFontsFS(ctx Context, fsys fs.FS, fonts iter.Seq[FontDescriptor]) error {
	// fs.FS 不接受 "./" 前缀，查找前做一次清理，错误中仍保留原始路径。
	stat := func(name string) (fs.FileInfo, error) { return fs.Stat(fsys, path.Clean(name)) }
	read := func(name string) ([]byte, error) { return fs.ReadFile(fsys, path.Clean(name)) }
	for font := range fonts {
		data, err := readFont(font.Path, stat, read)
		if err != nil {
			return err
		}
		ctx.AddFont(NewFontInsert(font.Name, data))
	}
	return nil
}

// readFont 先检查路径是否存在，再读取完整内容。
// 检查与读取之间文件被删除时按读取失败处理。
func readFont(name string, stat func(string) (fs.FileInfo, error), read func(string) ([]byte, error)) ([]byte, error) {
	if _, err := stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: name}
		}
		return nil, &ReadError{Path: name, Err: err}
	}
	data, err := read(name)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return data, nil
}
