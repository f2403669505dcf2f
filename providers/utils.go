package providers

import (
	"fmt"
	"io"
	"net"
	"strings"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func baseURL(parameters map[string]string, defaultValue string) string {
	if value := strings.TrimSpace(parameters["base_url"]); value != "" {
		return strings.TrimRight(value, "/")
	}

	return defaultValue
}

func ipv4String(ip net.IP) (string, error) {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4.String(), nil
	}

	return "", fmt.Errorf("%w: %v", ErrIncorrectIP, ip)
}
