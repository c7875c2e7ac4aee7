package constant

import "time"

type EngineStatus int8

const (
	EngineInit    EngineStatus = 0
	EngineRunning EngineStatus = 1
	EngineStop    EngineStatus = 2
)

// ProbeTimeout 单次探测的连接超时和读取 banner 的超时共用这个值
const ProbeTimeout = 1 * time.Second

// BannerBufferSize 是单次读取 banner 的上限
const BannerBufferSize = 1024

// 端口没有返回 banner 时使用 ServiceClosed，有 banner 但不在服务表中时使用 ServiceUnknown
const (
	ServiceClosed  = "Closed"
	ServiceUnknown = "Unknown Service"
)

const (
	DefaultPortRange  = "1-1000"
	DefaultNumThreads = 10
	DefaultOutputFile = "scan_results.json"
)
