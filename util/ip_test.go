package util

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseSubnetsTestCase struct {
	nets    []string
	out     []*net.IPNet
	wantErr bool
	msg     string
}

// Ensures ParseSubnets returns expected net.IPNets and returns
// error when invalid IP address/CIDR network is provided.
func TestParseSubnets(t *testing.T) {
	validNets := []string{"192.168.0.0/24", "2001:db8::/32", "192.168.0.1", "2001:db8::1"}
	validNetsOutput := createIPNets([]string{"192.168.0.0/24", "2001:db8::/32", "192.168.0.1/32", "2001:db8::1/128"})

	testCases := []parseSubnetsTestCase{
		{
			nets:    validNets,
			out:     validNetsOutput,
			wantErr: false,
			msg:     "Valid mixed subnets",
		},
		{
			nets:    []string{"invalidIP", "300.0.0.0/24"},
			out:     nil,
			wantErr: true,
			msg:     "Invalid subnets (Expecting Error)",
		},
		{
			nets:    []string{"10.0.0.0/8", "300.0.0.0/24"},
			out:     nil,
			wantErr: true,
			msg:     "A single bad entry fails the whole list",
		},
		{
			nets:    nil,
			out:     nil,
			wantErr: false,
			msg:     "No subnets",
		},
	}

	for _, testCase := range testCases {
		output, err := ParseSubnets(testCase.nets)
		assert.Equal(t, testCase.out, output, testCase.msg)
		if testCase.wantErr {
			assert.Error(t, err, testCase.msg)
		} else {
			assert.NoError(t, err, testCase.msg)
		}
	}
}

func TestContainsIP(t *testing.T) {
	subnets := createIPNets([]string{"10.0.0.0/8", "192.168.1.5/32", "2001:db8::/32"})

	testCases := []struct {
		ip  string
		out bool
		msg string
	}{
		{"10.20.30.40", true, "inside a /8"},
		{"192.168.1.5", true, "single host network"},
		{"192.168.1.6", false, "next to a single host network"},
		{"2001:db8::42", true, "IPv6 network"},
		{"::ffff:10.1.1.1", true, "IPv4 mapped IPv6 address"},
		{"8.8.8.8", false, "outside every network"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.out, ContainsIP(subnets, net.ParseIP(testCase.ip)), testCase.msg)
	}
}

func createIPNets(cidr []string) []*net.IPNet {
	ipNets := make([]*net.IPNet, len(cidr))

	for i, ip := range cidr {
		_, ipNet, _ := net.ParseCIDR(ip)
		ipNets[i] = ipNet
	}

	return ipNets
}
