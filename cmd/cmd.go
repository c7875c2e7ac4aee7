package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"port-scanner/config"
	"port-scanner/config/constant"
	"port-scanner/logging"
	"port-scanner/service"
)

var logger = logging.GetSugar()
var appConfig = config.GetAppConfig()

func init() {
	// -v 留给 verbose 使用
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func RunApp() error {
	return NewApp().Run(os.Args)
}

// NewApp 构造命令行程序
func NewApp() *cli.App {
	return &cli.App{
		Name:      "port-scanner",
		Usage:     "Simple TCP Port Scanner with Service Categorization",
		UsageText: "port-scanner -t <target> [-t <target>...] [options] [target...]",
		Action:    MainAction,
		Version:   "0.1.0",
		Flags: []cli.Flag{

			&cli.StringSliceFlag{
				Name:    "target",
				Usage:   "Target IPs or domains, repeat the flag or separate with commas",
				Aliases: []string{"t"},
			},

			&cli.StringFlag{
				Name:        "input",
				Usage:       "A file contains a list of IPs to be scanned, one line per IP",
				Destination: &appConfig.InputFile,
				Aliases:     []string{"i"},
			},

			&cli.StringFlag{
				Name:        "port-range",
				Usage:       "Port range to scan (e.g., 1-1000 or all)",
				Value:       constant.DefaultPortRange,
				Destination: &appConfig.PortRange,
				Aliases:     []string{"p"},
			},

			&cli.IntFlag{
				Name:        "num-threads",
				Usage:       "Number of concurrent probes per target",
				Value:       constant.DefaultNumThreads,
				Destination: &appConfig.NumThreads,
				Aliases:     []string{"n"},
			},

			&cli.StringFlag{
				Name:        "output",
				Usage:       "File to save results",
				Value:       constant.DefaultOutputFile,
				Destination: &appConfig.OutputFile,
				Aliases:     []string{"o"},
			},

			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Enable verbose output",
				Value:       false,
				Destination: &appConfig.Verbose,
				Aliases:     []string{"v"},
			},

			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Debug mode",
				Value:       false,
				Destination: &appConfig.Debug,
			},

			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "Log filename",
				Destination: &appConfig.LogFile,
				DefaultText: "<executable dir>/log.log",
			},
		},
		Before: func(context *cli.Context) error {
			// 初始化日志系统
			logging.InitLogger(appConfig.Debug, appConfig.LogFile)

			// -t 之后多余的参数也当作目标，例如 -t 1.1.1.1 2.2.2.2
			appConfig.Targets = append([]string{}, context.StringSlice("target")...)
			appConfig.Targets = append(appConfig.Targets, context.Args().Slice()...)

			if appConfig.OutputFile == "" {
				logger.Warnf("Empty output filename, use default output filename: %s", constant.DefaultOutputFile)
				appConfig.OutputFile = constant.DefaultOutputFile
			}
			if appConfig.NumThreads < 1 {
				logger.Warnf("num-threads must be positive, got %d, use 1 instead", appConfig.NumThreads)
				appConfig.NumThreads = 1
			}
			return nil
		},
	}
}

func MainAction(c *cli.Context) error {

	// 程序的真正入口
	logger.Debugf("appConfig: %+v", appConfig)

	if len(appConfig.Targets) == 0 && appConfig.InputFile == "" {
		return errors.New("the 'target' and 'input' cannot be empty at the same time")
	}

	// 端口范围有问题直接退出，不开始扫描
	ports, err := service.ParsePortRange(appConfig.PortRange)
	if err != nil {
		return err
	}

	targets, err := service.NewTaskBuilder(appConfig.Targets, appConfig.InputFile).Build()
	if err != nil {
		return err
	}

	printer := service.NewPrinter(c.App.Writer)
	engine := service.NewScanEngine(appConfig.NumThreads, appConfig.Verbose, printer.Open)
	saver := service.NewSaver(appConfig.OutputFile)

	if err := service.NewRunner(engine, saver, printer, ports).Run(targets); err != nil {
		return err
	}

	logger.Debugf("MainAction end")
	return nil
}
