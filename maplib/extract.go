package maplib

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/asergeyev/nradix"
	"github.com/samber/lo"
)

var (
	ipv4Regexp = regexp.MustCompile(
		`(?:(?:25[0-5]|(?:2[0-4]|1[0-9]|[1-9]|)[0-9])\.){3}(?:25[0-5]|(?:2[0-4]|1[0-9]|[1-9]|)[0-9])`)

	reservedNetworks = []string{
		"0.0.0.0/32",
		"10.0.0.0/8",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"172.16.0.0/12",
		"192.168.0.0/16",
	}

	reservedTree = func() *nradix.Tree {
		tree := nradix.NewTree(len(reservedNetworks))

		for _, v := range reservedNetworks {
			if err := tree.AddCIDR(v, true); err != nil {
				panic(err)
			}
		}

		return tree
	}()
)

// IsReserved checks if a given IPv4 address is not globally routable:
// loopback, RFC-1918 private blocks, link-local or unspecified.
// Unparseable values are reserved as well.
func IsReserved(ip string) bool {
	value, err := reservedTree.FindCIDR(ip)

	return err != nil || value != nil
}

// ExtractIPs finds all IPv4 addresses in a given text. Results are
// unique, keep an order of the first occurrence and have no reserved
// addresses.
func ExtractIPs(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return []string{}, fmt.Errorf("cannot decode content: %w", ErrInvalidEncoding)
	}

	found := ipv4Regexp.FindAllString(string(content), -1)
	rv := lo.Reject(lo.Uniq(found), func(item string, _ int) bool {
		return IsReserved(item)
	})

	return rv, nil
}
