package service

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Saver 把扫描结果写成 JSON 数组
type Saver struct {
	OutputFile string
}

// NewSaver 创建一个新的 Saver
func NewSaver(outputFile string) *Saver {
	return &Saver{OutputFile: outputFile}
}

// Save 覆盖写入输出文件，先写临时文件再 rename，写失败时原文件保持不变
func (s *Saver) Save(results []ScanResult) error {
	tag := "[Saver]"
	if results == nil {
		results = []ScanResult{}
	}

	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshal scan results")
	}

	dir := filepath.Dir(s.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	tmpFile := filepath.Join(dir, ".scan_"+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		_ = os.Remove(tmpFile)
		return errors.Wrapf(err, "write temp file %s", tmpFile)
	}
	if err := os.Rename(tmpFile, s.OutputFile); err != nil {
		_ = os.Remove(tmpFile)
		return errors.Wrapf(err, "rename %s to %s", tmpFile, s.OutputFile)
	}

	logger.Debugf("%s %d results written to %s", tag, len(results), s.OutputFile)
	return nil
}
