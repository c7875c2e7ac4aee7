package service

import "port-scanner/config/constant"

// 常见端口对应的服务，进程内只读
var serviceCategories = map[int]string{
	20:    "FTP (File Transfer Protocol)",
	21:    "FTP (File Transfer Protocol)",
	22:    "SSH (Secure Shell)",
	23:    "Telnet",
	25:    "SMTP (Simple Mail Transfer Protocol)",
	53:    "DNS (Domain Name System)",
	80:    "HTTP (HyperText Transfer Protocol)",
	110:   "POP3 (Post Office Protocol)",
	143:   "IMAP (Internet Message Access Protocol)",
	443:   "HTTPS (Secure HTTP)",
	3306:  "MySQL Database",
	5432:  "PostgreSQL Database",
	6379:  "Redis",
	27017: "MongoDB",
	8080:  "HTTP Proxy",
}

// Classify 根据端口号返回已知的服务名称，未知端口返回 constant.ServiceUnknown
func Classify(port int) string {
	if service, ok := serviceCategories[port]; ok {
		return service
	}
	return constant.ServiceUnknown
}
