// imgcli — утилита для статистики и ресайза одного PNG файла.
//
// Использование:
//   imgcli stats <file>
//   imgcli resize <small|medium|large> <file>
//
// config.yaml рядом с бинарником необязателен (лог, вывод времени, S3 зеркало).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ilkoid/imgcli/pkg/app"
	"github.com/ilkoid/imgcli/pkg/config"
	"github.com/ilkoid/imgcli/pkg/imaging"
	"github.com/ilkoid/imgcli/pkg/imgerr"
	"github.com/ilkoid/imgcli/pkg/s3storage"
	"github.com/ilkoid/imgcli/pkg/stats"
	"github.com/ilkoid/imgcli/pkg/utils"
)

const usage = "usage: imgcli stats <file> | imgcli resize <small|medium|large> <file>"

func main() {
	cfg, cfgPath, err := app.LoadConfig(&app.StandaloneConfigPathFinder{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// === ЛОГГЕР (только app.debug) ===
	if cfg.App.Debug {
		if err := utils.InitLogger(cfg.App.LogDir); err != nil {
			fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
		}
	}
	utils.Info("imgcli started", "args", strings.Join(os.Args[1:], " "), "config", cfgPath)

	ctx, shutdown := utils.SetupGracefulShutdownWithContext()

	c := &cli{
		ctx:     ctx,
		cfg:     cfg,
		resizer: imaging.NewResizer(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	if cfg.S3.Enabled {
		client, err := s3storage.New(cfg.S3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "S3 client init failed: %v\n", err)
			shutdown()
			os.Exit(1)
		}
		c.uploader = client
	}

	code := c.run(os.Args[1:])
	shutdown()
	os.Exit(code)
}

// cli — всё, что нужно одному запуску. os.Exit вызывается только в main.
type cli struct {
	ctx      context.Context
	cfg      *config.AppConfig
	resizer  *imaging.Resizer
	uploader s3storage.Uploader // nil если s3.enabled = false

	stdout io.Writer
	stderr io.Writer
}

// run разбирает аргументы (без имени программы) и возвращает код выхода.
func (c *cli) run(args []string) int {
	if len(args) == 0 {
		return c.fail(fmt.Errorf("%w: %s", imgerr.ErrArgumentCount, usage))
	}

	var err error
	switch cmd := strings.ToLower(args[0]); cmd {
	case "stats":
		err = c.statsCmd(args[1:])
	case "resize":
		err = c.resizeCmd(args[1:])
	default:
		utils.Warn("Unknown command", "cmd", args[0])
		fmt.Fprintln(c.stdout, "unknown cmd")
		return 0
	}

	if err != nil {
		return c.fail(err)
	}
	return 0
}

func (c *cli) statsCmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", imgerr.ErrArgumentCount, usage)
	}

	rec, err := stats.Gather(args[0])
	if err != nil {
		return err
	}
	utils.Debug("Stats gathered", "file", rec.Name, "size", rec.SizeBytes)

	return stats.Display(c.stdout, rec)
}

func (c *cli) resizeCmd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", imgerr.ErrArgumentCount, usage)
	}

	label, err := imaging.ParseSizeLabel(args[0])
	if err != nil {
		return err
	}
	inputPath := args[1]

	res, err := c.resizer.Resize(inputPath, label)
	if res.OutputPath != "" {
		fmt.Fprintf(c.stdout, "Creating file at %s\n", res.OutputPath)
	}
	if err != nil {
		return err
	}
	utils.Info("Resize done", "input", inputPath, "output", res.OutputPath,
		"width", res.Dimensions.Width, "height", res.Dimensions.Height, "elapsed", res.Elapsed)

	if c.cfg.ImageProcessing.ShowElapsed() {
		fmt.Fprintf(c.stdout, "Resized in %d ms\n", res.Elapsed.Milliseconds())
	}

	if c.uploader == nil {
		return nil
	}
	obj, err := c.uploader.Upload(c.ctx, res.OutputPath)
	if err != nil {
		return err
	}
	utils.Info("Uploaded", "uri", obj.URI(), "size", obj.Size)
	fmt.Fprintf(c.stdout, "Uploaded to %s\n", obj.URI())
	return nil
}

// fail печатает одну строку в stderr и возвращает код 1.
func (c *cli) fail(err error) int {
	utils.Error("Command failed", "error", err)
	fmt.Fprintln(c.stderr, describe(err))
	return 1
}

// describe превращает ошибку в сообщение для пользователя.
func describe(err error) string {
	switch {
	case errors.Is(err, imgerr.ErrArgumentCount), errors.Is(err, imgerr.ErrNotFound):
		return err.Error()
	case errors.Is(err, imgerr.ErrInvalidSizeLabel):
		return fmt.Sprintf("%v; allowed: small, medium, large", err)
	case errors.Is(err, imgerr.ErrMetadataUnavailable):
		return fmt.Sprintf("Error generating image stats: %v", err)
	case errors.Is(err, imgerr.ErrEncodeOrWrite):
		return fmt.Sprintf("failed to save image. %v", err)
	case errors.Is(err, imgerr.ErrUnsupportedExtension), errors.Is(err, imgerr.ErrDecode):
		return fmt.Sprintf("failed to resize image: %v", err)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
