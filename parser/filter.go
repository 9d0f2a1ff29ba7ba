package parser

import (
	"net"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/util"
)

//SourceFilter drops records by source address. Addresses on the never
//included list are dropped unless they are also on the always included list.
type SourceFilter struct {
	alwaysIncluded []*net.IPNet
	neverIncluded  []*net.IPNet
}

//NewSourceFilter creates a SourceFilter from parsed networks
func NewSourceFilter(alwaysIncluded, neverIncluded []*net.IPNet) *SourceFilter {
	return &SourceFilter{
		alwaysIncluded: alwaysIncluded,
		neverIncluded:  neverIncluded,
	}
}

//Ignore reports whether the record should be left out of the analysis.
//Records without a readable SRC address are kept for the aggregation to judge.
func (f *SourceFilter) Ignore(rec pt.DropRecord) bool {
	if f == nil || len(f.neverIncluded) == 0 {
		return false
	}

	src, ok := rec.Field(pt.Src)
	if !ok {
		return false
	}
	srcIP := net.ParseIP(src)
	if srcIP == nil {
		return false
	}

	// an address on both lists is kept
	if !util.ContainsIP(f.neverIncluded, srcIP) {
		return false
	}
	return !util.ContainsIP(f.alwaysIncluded, srcIP)
}
