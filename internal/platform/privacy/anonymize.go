// Package privacy masks personal identifiers before they reach the logs.
// Citizen IDs and client addresses are the only PII the registry handles.
package privacy

import (
	"fmt"
	"net"
	"strings"
)

const (
	citizenIDPrefix = 3
	citizenIDSuffix = 1
)

// MaskCitizenID keeps the first three and the last character of id and
// replaces the rest with '*' (e.g. "1101101101101" -> "110*********1").
// IDs too short to mask meaningfully are fully starred; empty stays empty.
func MaskCitizenID(id string) string {
	if id == "" {
		return ""
	}
	runes := []rune(id)
	if len(runes) <= citizenIDPrefix+citizenIDSuffix {
		return strings.Repeat("*", len(runes))
	}
	masked := len(runes) - citizenIDPrefix - citizenIDSuffix
	return string(runes[:citizenIDPrefix]) + strings.Repeat("*", masked) + string(runes[len(runes)-citizenIDSuffix:])
}

// AnonymizeIP truncates an IP address to remove the host-identifying portion.
//
// IPv4 addresses keep their /24 network ("192.168.1.47" -> "192.168.1.0").
// IPv6 addresses keep their /48 prefix ("2001:db8:85a3::8a2e:370:7334" -> "2001:0db8:85a3::").
//
// Returns "invalid" for unparseable IP addresses, and "unknown" for empty strings.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// AnonymizeRemoteAddr anonymizes the host part of a "host:port" remote address.
func AnonymizeRemoteAddr(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	return AnonymizeIP(host)
}
