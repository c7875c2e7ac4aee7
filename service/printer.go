package service

import (
	"fmt"
	"io"
	"sync"
)

// Printer 负责控制台输出，多个探测协程会同时调用 Open
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Open 输出一个开放端口
func (p *Printer) Open(r ScanResult) {
	banner := ""
	if r.Banner != nil {
		banner = *r.Banner
	}
	p.printf("Port %d: %s - %s\n", r.Port, r.Service, banner)
}

func (p *Printer) Scanning(target string) {
	p.printf("\nScanning %s...\n", target)
}

func (p *Printer) Saved(path string) {
	p.printf("Scan results saved to %s\n", path)
}

func (p *Printer) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}
