package service

import (
	"port-scanner/config/constant"
	"port-scanner/logging"
)

var logger = logging.GetSugar()

// ScanResult 表示一个端口的扫描结果，创建后不再修改
// Banner 为 nil 表示没有读到 banner，此时 Service 一定是 constant.ServiceClosed
type ScanResult struct {
	IP      string  `json:"ip"`
	Port    int     `json:"port"`
	Service string  `json:"service"`
	Banner  *string `json:"banner"`
}

func newOpenResult(ip string, port int, banner string) ScanResult {
	return ScanResult{
		IP:      ip,
		Port:    port,
		Service: Classify(port),
		Banner:  &banner,
	}
}

func newClosedResult(ip string, port int) ScanResult {
	return ScanResult{
		IP:      ip,
		Port:    port,
		Service: constant.ServiceClosed,
	}
}

// IsOpen 端口是否读到了 banner
func (r ScanResult) IsOpen() bool {
	return r.Banner != nil
}
