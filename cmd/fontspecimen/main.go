// Command fontspecimen loads the fonts listed in a manifest and writes a PDF
// specimen sheet showing each of them.
//
//	fontspecimen fonts.toml --out specimen.pdf
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/fontload"
	"github.com/ByLCY/fontload/canvasctx"
	"github.com/ByLCY/fontload/fonts"
	"github.com/ByLCY/fontload/manifest"
	"github.com/ByLCY/fontload/specimen"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	out     string
	title   string
	builtin bool
	verbose bool
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "fontspecimen <manifest>",
		Short:         "Render a PDF specimen of the fonts listed in a manifest",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			return run(newLogger(stderr, level), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "specimen.pdf", "PDF 输出路径")
	cmd.Flags().StringVar(&opts.title, "title", "", "样张标题")
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "同时注册内置 Go 字体")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// run 串联清单解析、字体注册与样张渲染。
func run(logger *log.Logger, manifestPath string, opts options) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	logger.Debug("已读取字体清单", "path", manifestPath, "fonts", len(m.Fonts))

	ctx := canvasctx.New()
	if opts.builtin {
		fonts.Register(ctx)
		logger.Debug("已注册内置字体", "fonts", fonts.Names())
	}
	if err := fontload.LoadFontSeq(ctx, m.All()); err != nil {
		var nf *fontload.NotFoundError
		var re *fontload.ReadError
		switch {
		case errors.As(err, &nf):
			logger.Warn("字体文件不存在", "path", nf.Path)
		case errors.As(err, &re):
			logger.Warn("字体文件无法读取", "path", re.Path, "cause", re.Err)
		}
		return fmt.Errorf("加载字体失败: %w", err)
	}
	logger.Info("字体已注册", "families", len(ctx.Families()))

	pdfBytes, err := specimen.Render(ctx, specimen.Options{
		Title:  opts.title,
		Sample: m.Sample,
		Size:   m.Size,
	})
	if err != nil {
		return fmt.Errorf("渲染样张失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(opts.out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	logger.Info("已生成字体样张", "path", opts.out)
	return nil
}
