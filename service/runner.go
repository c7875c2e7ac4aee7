package service

import (
	"github.com/pkg/errors"
)

// Runner 依次扫描每个目标并保存结果，一个目标扫描和保存完成之后才开始下一个
type Runner struct {
	engine  *ScanEngine
	saver   *Saver
	printer *Printer
	ports   []int
}

// NewRunner 创建一个新的 Runner
func NewRunner(engine *ScanEngine, saver *Saver, printer *Printer, ports []int) *Runner {
	return &Runner{
		engine:  engine,
		saver:   saver,
		printer: printer,
		ports:   ports,
	}
}

// Run 扫描所有目标，每个目标的结果都写到同一个输出文件，后面的目标会覆盖前面的结果
func (r *Runner) Run(targets []string) error {
	for _, target := range targets {
		r.printer.Scanning(target)
		output := r.engine.Scan(target, r.ports)

		if err := r.saver.Save(output); err != nil {
			return errors.Wrapf(err, "save results of %s", target)
		}
		r.printer.Saved(r.saver.OutputFile)
	}
	return nil
}
