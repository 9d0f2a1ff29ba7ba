package exitnode

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/activecm/droplog/pkg/data"
)

// exitAddressKeyword starts the lines of a Tor exit-addresses document which
// carry an address, e.g.
//
//	ExitAddress 171.25.193.25 2020-12-05 14:44:33
const exitAddressKeyword = "ExitAddress"

//Load reads the exit node addresses from an exit-addresses document.
//Lines without an address after the keyword are ignored.
func Load(r io.Reader) (data.StringSet, error) {
	nodes := data.NewStringSet()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, exitAddressKeyword) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != exitAddressKeyword {
			continue
		}
		nodes.Insert(fields[1])
	}
	return nodes, scanner.Err()
}

//LoadFile reads the exit node addresses from a file on disk
func LoadFile(path string) (data.StringSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
