package service

import (
	"bufio"
	"io"
	"net"
	"os"
	"strings"

	"github.com/pkg/errors"

	"port-scanner/config/constant"
)

// TaskBuilder 生成需要扫描的目标列表
type TaskBuilder struct {

	// 引擎状态
	Status constant.EngineStatus

	// 命令行传入的目标，可以是 IP 也可以是域名，也可以用逗号分隔多个
	targets []string

	// 每行一个 IP 的输入文件
	inputFile string
}

// NewTaskBuilder 构造一个新的 TaskBuilder
func NewTaskBuilder(targets []string, inputFile string) *TaskBuilder {
	return &TaskBuilder{
		Status:    constant.EngineInit,
		targets:   targets,
		inputFile: inputFile,
	}
}

// Build 按顺序返回所有目标，命令行目标在前，文件中的目标在后
func (b *TaskBuilder) Build() ([]string, error) {
	b.Status = constant.EngineRunning
	defer func() {
		b.Status = constant.EngineStop
	}()

	jobs := make([]string, 0, len(b.targets))
	for _, raw := range b.targets {
		for _, target := range strings.Split(raw, ",") {
			target = strings.TrimSpace(target)
			if target == "" {
				continue
			}
			jobs = append(jobs, target)
		}
	}

	if b.inputFile != "" {
		fileJobs, err := b.readInputFile()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, fileJobs...)
	}

	if len(jobs) == 0 {
		return nil, errors.New("no target to scan")
	}
	logger.Infof("%d jobs were successfully added.", len(jobs))
	return jobs, nil
}

func (b *TaskBuilder) readInputFile() ([]string, error) {
	fp, err := os.Open(b.inputFile)
	if err != nil {
		return nil, errors.Wrapf(err, "open input file %s", b.inputFile)
	}
	defer func(fp *os.File) {
		_ = fp.Close()
	}(fp)

	jobs := make([]string, 0)
	bufferReader := bufio.NewReader(fp)
	for {
		line, err := bufferReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "read input file %s", b.inputFile)
		}

		line = strings.TrimSpace(line)
		// 跳过空行或者井号开头的行
		if line != "" && !strings.HasPrefix(line, "#") {
			if net.ParseIP(line) == nil {
				logger.Errorf("Illegal IP address found: %s, skip it.", line)
			} else {
				jobs = append(jobs, line)
			}
		}

		if err == io.EOF {
			break
		}
	}
	return jobs, nil
}
