package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCitizenID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"thirteen digits", "1101101101101", "110*********1"},
		{"short invalid id", "110110", "110**0"},
		{"four characters", "abcd", "****"},
		{"single character", "1", "*"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCitizenID(tt.input))
		})
	}
}

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ipv4 standard address", "192.168.1.47", "192.168.1.0"},
		{"ipv4 localhost", "127.0.0.1", "127.0.0.0"},
		{"ipv6 compressed address", "2001:db8:85a3::8a2e:370:7334", "2001:0db8:85a3::"},
		{"ipv6 loopback", "::1", "0000:0000:0000::"},
		{"empty", "", "unknown"},
		{"garbage", "not-an-ip", "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnonymizeIP(tt.input))
		})
	}
}

func TestAnonymizeRemoteAddr(t *testing.T) {
	assert.Equal(t, "192.0.2.0", AnonymizeRemoteAddr("192.0.2.1:1234"))
	assert.Equal(t, "2001:0db8:0000::", AnonymizeRemoteAddr("[2001:db8::1]:80"))
	assert.Equal(t, "10.1.2.0", AnonymizeRemoteAddr("10.1.2.3"))
}
