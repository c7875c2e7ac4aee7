package service

import (
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"

	"port-scanner/config/constant"
)

// ScanEngine 对单个目标的一组端口做并发探测
type ScanEngine struct {
	// 引擎状态
	Status constant.EngineStatus

	// 同时进行的探测数量上限
	Concurrency int

	// 单次探测的超时
	Timeout time.Duration

	// Verbose 打开时，每个开放端口的结果都会交给 Observer
	Verbose  bool
	Observer func(ScanResult)

	probe ProbeFunc
}

// NewScanEngine 创建新的 ScanEngine，concurrency 小于 1 时按 1 处理
func NewScanEngine(concurrency int, verbose bool, observer func(ScanResult)) *ScanEngine {
	return &ScanEngine{
		Status:      constant.EngineInit,
		Concurrency: concurrency,
		Timeout:     constant.ProbeTimeout,
		Verbose:     verbose,
		Observer:    observer,
		probe:       Probe,
	}
}

// WithProbe 替换探测函数
func (engine *ScanEngine) WithProbe(probe ProbeFunc) *ScanEngine {
	engine.probe = probe
	return engine
}

// Scan 探测 host 上的所有 ports，全部探测结束后才返回
// 每个端口在结果中恰好出现一次，顺序为完成顺序
func (engine *ScanEngine) Scan(host string, ports []int) []ScanResult {
	scanID := uuid.NewString()
	tag := "[ScanEngine-" + scanID[:8] + "]"

	workers := engine.Concurrency
	if workers < 1 {
		logger.Warnf("%s concurrency %d is invalid, use 1 instead", tag, workers)
		workers = 1
	}
	probe := engine.probe
	if probe == nil {
		probe = Probe
	}
	timeout := engine.Timeout
	if timeout <= 0 {
		timeout = constant.ProbeTimeout
	}

	engine.Status = constant.EngineRunning
	start := time.Now()
	logger.Debugf("%s scan %s, %d ports, %d workers, scan id %s", tag, host, len(ports), workers, scanID)

	resultsChan := make(chan ScanResult, workers)
	results := make([]ScanResult, 0, len(ports))

	// 结果只由这一个协程追加，不需要加锁
	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for r := range resultsChan {
			results = append(results, r)
		}
	}()

	pool := workerpool.New(workers)
	for _, port := range ports {
		port := port
		pool.Submit(func() {
			resultsChan <- engine.scanPort(probe, host, port, timeout)
		})
	}

	// 等待所有探测完成，再关闭结果队列
	pool.StopWait()
	close(resultsChan)
	collectorWg.Wait()

	engine.Status = constant.EngineStop

	openCount := 0
	for _, r := range results {
		if r.IsOpen() {
			openCount++
		}
	}
	logger.Infof("%s %s finished in %s, %d open, %d closed", tag, host, time.Since(start), openCount, len(results)-openCount)
	return results
}

func (engine *ScanEngine) scanPort(probe ProbeFunc, host string, port int, timeout time.Duration) ScanResult {
	banner, open := probe(host, port, timeout)
	if !open {
		return newClosedResult(host, port)
	}

	result := newOpenResult(host, port, banner)
	if engine.Verbose && engine.Observer != nil {
		engine.Observer(result)
	}
	return result
}
