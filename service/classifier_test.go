package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"port-scanner/config/constant"
)

func TestClassifyKnownPorts(t *testing.T) {
	cases := map[int]string{
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
	for port, want := range cases {
		assert.Equal(t, want, Classify(port), "port %d", port)
	}
}

func TestClassifyUnknownPorts(t *testing.T) {
	for _, port := range []int{0, 1, 19, 24, 81, 444, 9999, 65535, -1} {
		assert.Equal(t, constant.ServiceUnknown, Classify(port), "port %d", port)
	}
}

func TestClassifyIsStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "Redis", Classify(6379))
		assert.Equal(t, constant.ServiceUnknown, Classify(6380))
	}
}
