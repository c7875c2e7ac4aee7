package service

import (
	"net"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"port-scanner/config/constant"
)

// ProbeFunc 对单个 host:port 做一次探测，返回 banner 以及端口是否视为开放
type ProbeFunc func(host string, port int, timeout time.Duration) (string, bool)

// Probe 建立一次 TCP 连接并读取一次 banner
// 连接失败、读取超时、没有数据、数据不是合法的 UTF-8 都视为关闭，不重试
func Probe(host string, port int, timeout time.Duration) (string, bool) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		logger.Debugf("[Prober] dial %s failed: %v", addr, err)
		return "", false
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return "", false
	}

	buf := make([]byte, constant.BannerBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		logger.Debugf("[Prober] read %s returned nothing: %v", addr, err)
		return "", false
	}

	return decodeBanner(buf[:n])
}

func decodeBanner(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	banner := strings.TrimSpace(string(raw))
	if banner == "" {
		return "", false
	}
	return banner, true
}
